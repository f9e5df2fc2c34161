package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrValidation    = fmt.Errorf("validation failed")
	ErrUnevenSplit   = fmt.Errorf("members can't be split evenly")
	ErrNotSetUp      = fmt.Errorf("group is not set up")
	ErrConfiguration = fmt.Errorf("invalid configuration")
	ErrOrchestrator  = fmt.Errorf("platform operation failed")

	ErrUnknownCommand     = fmt.Errorf("unknown command")
	ErrNotInVoiceChannel  = fmt.Errorf("you have to be in a voice channel to use this command")
	ErrInvocationNotFound = fmt.Errorf("no invocation recorded")
	ErrCommandTimeout     = fmt.Errorf("command timed out")
)
