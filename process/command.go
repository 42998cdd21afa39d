package process

import (
	"io"
	"strings"
	"time"
)

// Command describes a subprocess invocation.
type Command struct {
	// Binary is the executable to run, resolved through PATH when relative.
	Binary string
	// Args are passed to the binary verbatim.
	Args []string
	// Dir sets the working directory; empty means the caller's.
	Dir string
	// Env holds extra key=value pairs layered over os.Environ.
	Env []string
	// Stdin feeds the process standard input when non-nil.
	Stdin io.Reader
	// GracePeriod is the SIGTERM-to-SIGKILL window on cancellation.
	// Zero means 5 seconds.
	GracePeriod time.Duration
}

// String renders the command line, for log fields and problem messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Binary
	}
	return c.Binary + " " + strings.Join(c.Args, " ")
}
