package cost

import (
	"errors"
	"fmt"
)

type InvalidTargetError struct {
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid funding target: %s", e.Reason)
}

func invalidTarget(format string, args ...any) error {
	return &InvalidTargetError{Reason: fmt.Sprintf(format, args...)}
}

func IsInvalidTarget(err error) bool {
	var targetErr *InvalidTargetError
	return errors.As(err, &targetErr)
}
