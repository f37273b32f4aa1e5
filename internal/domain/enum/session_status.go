package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SessionStatus is the lifecycle state of a cashier session
type SessionStatus int

const (
	SessionStatusOpen   SessionStatus = 0
	SessionStatusClosed SessionStatus = 1
)

var sessionStatusNames = []string{"OPEN", "CLOSED"}

func (s SessionStatus) String() string {
	return nameOf(sessionStatusNames, int(s))
}

func (s SessionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SessionStatus) UnmarshalJSON(data []byte) error {
	i, err := parseName("session status", sessionStatusNames, nil, data)
	if err != nil {
		return err
	}
	*s = SessionStatus(i)
	return nil
}

func (s SessionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SessionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SessionStatusOpen
		return nil
	}
	i, err := scanInt("session status", value)
	if err != nil {
		return err
	}
	*s = SessionStatus(i)
	return nil
}
