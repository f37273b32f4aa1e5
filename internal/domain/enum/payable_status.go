package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PayableStatus represents the status of a bill. PENDING -> PAID only.
type PayableStatus int

const (
	PayableStatusPending PayableStatus = 0
	PayableStatusPaid    PayableStatus = 1
)

var payableStatusNames = []string{"PENDING", "PAID"}

func (s PayableStatus) String() string {
	return nameOf(payableStatusNames, int(s))
}

// ParsePayableStatus parses a query-string value such as "pending".
func ParsePayableStatus(s string) (PayableStatus, bool) {
	var st PayableStatus
	if err := st.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		return 0, false
	}
	return st, true
}

func (s PayableStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PayableStatus) UnmarshalJSON(data []byte) error {
	i, err := parseName("payable status", payableStatusNames, nil, data)
	if err != nil {
		return err
	}
	*s = PayableStatus(i)
	return nil
}

func (s PayableStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PayableStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PayableStatusPending
		return nil
	}
	i, err := scanInt("payable status", value)
	if err != nil {
		return err
	}
	*s = PayableStatus(i)
	return nil
}
