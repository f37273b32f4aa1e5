package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OperatorRole gates what a logged-in operator may do.
type OperatorRole int

const (
	OperatorRoleCashier OperatorRole = 0
	OperatorRoleAdmin   OperatorRole = 1
)

var operatorRoleNames = []string{"CASHIER", "ADMIN"}

func (r OperatorRole) String() string {
	return nameOf(operatorRoleNames, int(r))
}

func (r OperatorRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *OperatorRole) UnmarshalJSON(data []byte) error {
	i, err := parseName("operator role", operatorRoleNames, nil, data)
	if err != nil {
		return err
	}
	*r = OperatorRole(i)
	return nil
}

func (r OperatorRole) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *OperatorRole) Scan(value interface{}) error {
	if value == nil {
		*r = OperatorRoleCashier
		return nil
	}
	i, err := scanInt("operator role", value)
	if err != nil {
		return err
	}
	*r = OperatorRole(i)
	return nil
}
