package parameter

import (
	"fmt"
	"strings"
)

// Validate matches a config parameter against a list of valid options,
// ignoring case and surrounding whitespace, and returns the canonical form.
func Validate(param string, validOptions []string) (string, error) {
	cleanParam := strings.TrimSpace(param)

	for _, option := range validOptions {
		if strings.EqualFold(cleanParam, option) {
			return option, nil
		}
	}

	validParamStr := strings.Join(validOptions, ", ")
	return "", fmt.Errorf("invalid param %q: Expected one of: %s", cleanParam, validParamStr)
}
