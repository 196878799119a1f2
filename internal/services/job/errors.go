package job

import "errors"

// Domain errors for job service
var (
	ErrEmptyJobType   = errors.New("job type cannot be empty")
	ErrEmptyStartDate = errors.New("start date cannot be empty")
	ErrEmptyEndDate   = errors.New("end date cannot be empty")
)
