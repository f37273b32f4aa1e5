package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod is the tender used to settle a sale. Only cash moves
// physical currency through the drawer.
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = 0
	PaymentMethodPIX  PaymentMethod = 1
	PaymentMethodCard PaymentMethod = 2
)

var paymentMethodNames = []string{"Dinheiro", "PIX", "Cartão"}

var paymentMethodAliases = map[string]int{
	"cash":   int(PaymentMethodCash),
	"card":   int(PaymentMethodCard),
	"cartao": int(PaymentMethodCard),
}

func (m PaymentMethod) String() string {
	return nameOf(paymentMethodNames, int(m))
}

// IsCash reports whether the tender enters the drawer.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentMethodCash
}

func (m PaymentMethod) Valid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodCard
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	i, err := parseName("payment method", paymentMethodNames, paymentMethodAliases, data)
	if err != nil {
		return err
	}
	*m = PaymentMethod(i)
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	i, err := scanInt("payment method", value)
	if err != nil {
		return err
	}
	*m = PaymentMethod(i)
	return nil
}
