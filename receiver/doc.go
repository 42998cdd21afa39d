// Package receiver implements the accumulation protocol for problems.
//
// A Receiver decides what happens to a Problem handed to it: FailFast
// propagates immediately, Accumulator collects problems for a later Check.
// Production code takes a Receiver parameter and stays agnostic to the
// failure policy; the caller chooses the strategy.
//
//	func load(paths []string, r receiver.Receiver) ([]string, error) {
//	    var out []string
//	    for _, path := range paths {
//	        data, err := os.ReadFile(path)
//	        s, ok, err := receiver.GiveOk(r, string(data), err)
//	        if err != nil {
//	            return nil, err
//	        }
//	        if ok {
//	            out = append(out, s)
//	        }
//	    }
//	    return out, nil
//	}
package receiver
