package attachment

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/problemkit/problem"
	"github.com/kbukum/problemkit/version"
)

// Backtrace is a captured call stack. The core never captures stacks on its
// own; attach one where the capture site is meaningful.
type Backtrace struct {
	Stack []byte
}

// NewBacktrace captures the calling goroutine's stack.
func NewBacktrace() Backtrace {
	return Backtrace{Stack: debug.Stack()}
}

func (b Backtrace) String() string {
	return string(b.Stack)
}

// Correlation ties a problem to a request or worker by ID.
type Correlation struct {
	ID string
}

// NewCorrelation creates a Correlation with a fresh UUID.
func NewCorrelation() Correlation {
	return Correlation{ID: uuid.NewString()}
}

func (c Correlation) String() string {
	return c.ID
}

// ExitCode carries the process exit code a problem should produce.
type ExitCode struct {
	Code int
}

// Failure returns the conventional failure exit code.
func Failure() ExitCode {
	return ExitCode{Code: 1}
}

// Success returns the conventional success exit code.
func Success() ExitCode {
	return ExitCode{Code: 0}
}

func (e ExitCode) String() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// ExitCodeOf returns the first exit code attached anywhere in the chain,
// head-to-root.
func ExitCodeOf(p *problem.Problem) (int, bool) {
	ec, ok := problem.AttachmentOf[ExitCode](p)
	if !ok {
		return 0, false
	}
	return ec.Code, true
}

// Field describes one failed input field, attached by validation.
type Field struct {
	Name    string `json:"field"`
	Message string `json:"message"`
}

func (f Field) String() string {
	return f.Name + ": " + f.Message
}

// Attempt records one failed try of a retried operation.
type Attempt struct {
	N       int
	Backoff time.Duration
}

func (a Attempt) String() string {
	return fmt.Sprintf("attempt %d (backoff %s)", a.N, a.Backoff)
}

// Trace references the active span at the time the problem was built.
type Trace struct {
	TraceID string
	SpanID  string
}

func (t Trace) String() string {
	return t.TraceID + "/" + t.SpanID
}

// BuildInfo returns the binary's version information for attaching to
// problems surfaced in bug reports.
func BuildInfo() *version.Info {
	return version.GetVersionInfo()
}
