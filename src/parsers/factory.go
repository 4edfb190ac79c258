package parsers

import (
	"fmt"
	"strings"

	"github.com/username/autaxy/src/parsers/apple"
)

// DefaultSource is used when a caller does not name the report vendor.
const DefaultSource = apple.Source

func GetParser(source string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "", apple.Source:
		return apple.NewParser(), nil
	default:
		return nil, fmt.Errorf("no parser available for source: %s", source)
	}
}
