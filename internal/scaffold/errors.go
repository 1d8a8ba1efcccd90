package scaffold

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	ErrEmptySampleName = errors.New("sample name must not be empty")
	ErrPackageExists   = errors.New("sample folder already exists")
	ErrTemplateMissing = errors.New("template file not found")
	ErrInvalidCategory = errors.New("invalid category input")
	ErrInvalidName     = errors.New("sample name does not name a directory inside the samples directory")
)

// Step names the phase of a run a failure happened in.
type Step string

const (
	StepCreate  Step = "create files and folders"
	StepCleanup Step = "delete unwanted files"
	StepUpdate  Step = "update sample content"
	StepReset   Step = "reset sample"
)

// Frame is one entry of a captured call stack.
type Frame struct {
	Function string
	File     string
	Line     int
}

// StepError reports a failed file operation together with the stack at the
// point of failure.
type StepError struct {
	Step  Step
	Path  string
	Err   error
	Stack []Frame
}

func newStepError(step Step, path string, err error) *StepError {
	return &StepError{
		Step:  step,
		Path:  path,
		Err:   err,
		Stack: captureStack(3), // skip runtime.Callers, captureStack, newStepError
	}
}

func (e *StepError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Step, e.Path, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Trace formats the captured stack, innermost frame first.
func (e *StepError) Trace() string {
	var b strings.Builder
	for _, f := range e.Stack {
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return b.String()
}

// Trace returns the diagnostic trace carried by err, or "" if err has none.
func Trace(err error) string {
	var se *StepError
	if errors.As(err, &se) {
		return se.Trace()
	}
	return ""
}

func captureStack(skip int) []Frame {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stack []Frame
	for {
		f, more := frames.Next()
		// The goroutine entry points say nothing about the failure.
		if strings.HasPrefix(f.Function, "runtime.") {
			break
		}
		stack = append(stack, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return stack
}
