package criteria

import (
	"strings"

	"github.com/viant/alds/service/dao"
)

// Match reports whether the field value satisfies every parameter with the
// same (case-insensitive) name. Parameters for other fields are ignored.
func Match(field, value string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || !strings.EqualFold(parameter.Name, field) {
			continue
		}
		switch actual := parameter.Value.(type) {
		case string:
			if value != actual {
				return false
			}
		case []string:
			if len(actual) == 0 {
				continue
			}
			matched := false
			for _, candidate := range actual {
				if value == candidate {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}
