package process

import (
	"fmt"
	"time"

	"github.com/kbukum/problemkit/attachment"
	"github.com/kbukum/problemkit/problem"
)

// Result holds the captured output and status of a finished subprocess.
type Result struct {
	// Stdout holds everything the process wrote to standard output.
	Stdout []byte
	// Stderr holds everything the process wrote to standard error.
	Stderr []byte
	// ExitCode is the exit status, or -1 when the process was killed
	// by a signal or never started.
	ExitCode int
	// Duration is the wall-clock run time.
	Duration time.Duration
}

// Succeeded reports whether the process exited with status zero.
func (r *Result) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// Problem wraps err into a chain describing this result: the command line
// and exit status as the head message, tagged ErrProcess, with the exit
// code attached for the caller to recover. A nil err yields nil.
func (r *Result) Problem(cmd Command, err error) *problem.Problem {
	if err == nil {
		return nil
	}
	return problem.Wrap(err).
		Via(problem.Message(fmt.Sprintf("%s exited with code %d", cmd, r.ExitCode))).
		Via(ErrProcess).
		With(attachment.ExitCode{Code: r.ExitCode})
}
