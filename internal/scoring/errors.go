package scoring

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid weight configuration at engine
// construction. It is fatal: ranking cannot proceed with a broken
// configuration.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scoring config error: %s", e.Message)
}

// InvalidFeatureError reports configuration drift: a weight references a
// feature the extractor never produces, or a scored vector is missing a
// weighted feature. Treated as a programming error and surfaced rather
// than silently ignored.
type InvalidFeatureError struct {
	Features []string
}

func (e *InvalidFeatureError) Error() string {
	return fmt.Sprintf("invalid feature reference: %s", strings.Join(e.Features, ", "))
}
