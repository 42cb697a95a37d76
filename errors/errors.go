package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrUserNotInRoster = fmt.Errorf("user not in roster")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
)
