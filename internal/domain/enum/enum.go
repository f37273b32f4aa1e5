// Package enum holds the small closed sets persisted as integers and
// exchanged over JSON as their names.
package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}

// parseName accepts a name (case-insensitive), any alias, or the integer
// encoding as a JSON number.
func parseName(kind string, names []string, aliases map[string]int, data []byte) (int, error) {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return 0, err
		}
		if i < 0 || i >= len(names) {
			return 0, fmt.Errorf("invalid %s %d", kind, i)
		}
		return i, nil
	}

	for i, n := range names {
		if strings.EqualFold(n, str) {
			return i, nil
		}
	}
	if i, ok := aliases[strings.ToLower(strings.TrimSpace(str))]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("invalid %s %q", kind, str)
}

func scanInt(kind string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int:
		return v, nil
	case []byte:
		var i int
		_, err := fmt.Sscan(string(v), &i)
		return i, err
	case string:
		var i int
		_, err := fmt.Sscan(v, &i)
		return i, err
	default:
		return 0, fmt.Errorf("cannot scan %T into %s", value, kind)
	}
}
