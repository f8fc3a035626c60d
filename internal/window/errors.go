package window

import "fmt"

// ConfigError is returned when a run is configured with values the
// segmenter cannot work with. It is raised before any windowing starts.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// ValidateLength checks that a nominal window length yields a usable stride.
func ValidateLength(nominalLength int) error {
	if nominalLength <= 0 {
		return &ConfigError{Field: "sequence length", Value: nominalLength, Reason: "must be positive"}
	}
	if nominalLength/2 == 0 {
		return &ConfigError{Field: "sequence length", Value: nominalLength, Reason: "half-length stride is zero"}
	}
	return nil
}
