package cli

import (
	"fmt"
	"strings"

	"github.com/welloca/railsui/models"
)

type assignment struct {
	key   string
	value string
}

// parseAssignments splits key=value arguments. Values may be empty and may
// contain '='; keys are checked against the settings schema.
func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAssignment, arg)
		}
		if !models.IsSettingsKey(key) {
			return nil, &models.UnknownOptionError{Keys: []string{key}}
		}
		out = append(out, assignment{key: key, value: value})
	}
	return out, nil
}

// applyAssignments sets every assignment on s, in order.
func applyAssignments(s *models.Settings, assignments []assignment) error {
	for _, a := range assignments {
		if err := s.Set(a.key, a.value); err != nil {
			return err
		}
	}
	return nil
}
