package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleOrigin records how a sale record came to exist.
type SaleOrigin int

const (
	SaleOriginTable     SaleOrigin = 0
	SaleOriginQuickSale SaleOrigin = 1
	SaleOriginManual    SaleOrigin = 2
)

var saleOriginNames = []string{"TABLE", "QUICK_SALE", "MANUAL"}

func (o SaleOrigin) String() string {
	return nameOf(saleOriginNames, int(o))
}

func (o SaleOrigin) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *SaleOrigin) UnmarshalJSON(data []byte) error {
	i, err := parseName("sale origin", saleOriginNames, nil, data)
	if err != nil {
		return err
	}
	*o = SaleOrigin(i)
	return nil
}

func (o SaleOrigin) Value() (driver.Value, error) {
	return int64(o), nil
}

func (o *SaleOrigin) Scan(value interface{}) error {
	if value == nil {
		*o = SaleOriginTable
		return nil
	}
	i, err := scanInt("sale origin", value)
	if err != nil {
		return err
	}
	*o = SaleOrigin(i)
	return nil
}
