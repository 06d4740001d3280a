package schedule

import "errors"

var (
	ErrScheduleNotFound     = errors.New("work schedule not found")
	ErrActiveScheduleExists = errors.New("employee already has an active work schedule")
)
