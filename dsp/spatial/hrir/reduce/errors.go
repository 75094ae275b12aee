package reduce

import (
	"errors"
	"fmt"
)

// Errors wrapped by [ConfigError].
var (
	ErrNoMeasurements       = errors.New("reduce: measurement set is empty")
	ErrNoTargets            = errors.New("reduce: target list is empty")
	ErrDuplicateTarget      = errors.New("reduce: duplicate target name")
	ErrInvalidTarget        = errors.New("reduce: invalid target")
	ErrMalformedMeasurement = errors.New("reduce: malformed measurement")
	ErrLengthExceeded       = errors.New("reduce: output length out of range")
)

// ConfigError reports a fatal reduction problem together with the target and
// measurement that caused it. Measurement is -1 when no single measurement is
// at fault; Target is empty when no target is.
type ConfigError struct {
	Target      string
	Measurement int
	Err         error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Target != "" && e.Measurement >= 0:
		return fmt.Sprintf("%v (target %q, measurement %d)", e.Err, e.Target, e.Measurement)
	case e.Target != "":
		return fmt.Sprintf("%v (target %q)", e.Err, e.Target)
	case e.Measurement >= 0:
		return fmt.Sprintf("%v (measurement %d)", e.Err, e.Measurement)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(target string, measurement int, err error) error {
	return &ConfigError{Target: target, Measurement: measurement, Err: err}
}
