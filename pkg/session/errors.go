package session

import (
	"errors"
	"fmt"
)

// Stage names the part of a run that failed.
type Stage string

const (
	StageLoad       Stage = "load"
	StageSelection  Stage = "selection"
	StageResolution Stage = "resolution"
)

// StageError tags an error with the stage it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// WithStage wraps err in a StageError unless it already carries one.
func WithStage(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}

// ErrFinished is returned by Step once the session has ended.
var ErrFinished = errors.New("session finished")
