package timelog

import "errors"

// Domain errors for time tracking service
var ErrNonPositiveHours = errors.New("hours worked must be greater than zero")
