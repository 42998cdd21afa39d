// Package process runs subprocesses and reports their failures as problem
// chains. A failed command comes back tagged ErrProcess with an ExitCode
// attachment, so a caller can recover the exit status without parsing the
// error message:
//
//	result, err := process.Run(ctx, process.Command{Binary: "pg_dump", Args: args})
//	if p, ok := err.(*problem.Problem); ok {
//	    code, _ := attachment.ExitCodeOf(p)
//	    ...
//	}
//
// Runner adds retry and circuit breaking around repeated executions, and can
// hand every failed attempt to a problem receiver.
package process
