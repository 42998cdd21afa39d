package problem

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%v, %s  concise single-line Error()
//	%q      quoted Error()
//	%+v     multi-line debug rendering, one cause per line with attachments
//
// The multi-line layout is diagnostic output, not a stable contract.
func (p *Problem) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			p.formatVerbose(f)
			return
		}
		io.WriteString(f, p.Error())
	case 's':
		io.WriteString(f, p.Error())
	case 'q':
		fmt.Fprintf(f, "%q", p.Error())
	}
}

func (p *Problem) formatVerbose(w io.Writer) {
	for i, c := range p.causes {
		if i == 0 {
			fmt.Fprintf(w, "%v", c.err)
		} else {
			fmt.Fprintf(w, "\ncaused by: %v", c.err)
		}
		for _, a := range c.attachments {
			fmt.Fprintf(w, "\n  %T: %v", a, a)
		}
	}
}
