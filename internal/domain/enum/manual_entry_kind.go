package enum

import "encoding/json"

// ManualEntryKind selects which ledger shape a manual cashier entry takes:
// an inflow is recorded as a sale record, an outflow as an expense.
type ManualEntryKind int

const (
	ManualEntryInflow  ManualEntryKind = 0
	ManualEntryOutflow ManualEntryKind = 1
)

var manualEntryKindNames = []string{"ENTRADA", "SAIDA"}

var manualEntryKindAliases = map[string]int{
	"inflow":  int(ManualEntryInflow),
	"outflow": int(ManualEntryOutflow),
	"saída":   int(ManualEntryOutflow),
}

func (k ManualEntryKind) String() string {
	return nameOf(manualEntryKindNames, int(k))
}

func (k ManualEntryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ManualEntryKind) UnmarshalJSON(data []byte) error {
	i, err := parseName("manual entry kind", manualEntryKindNames, manualEntryKindAliases, data)
	if err != nil {
		return err
	}
	*k = ManualEntryKind(i)
	return nil
}
