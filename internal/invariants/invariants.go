// Package invariants gates expensive internal consistency checks behind the
// "flatcol_invariants" build tag. Checks guard trusted-caller contracts that
// release builds deliberately do not enforce.
package invariants

import "fmt"

// Check panics with the formatted message when the condition is violated and
// checks are compiled in. Without the build tag the call compiles to nothing.
func Check(ok bool, format string, args ...any) {
	if Enabled && !ok {
		panic(fmt.Sprintf(format, args...))
	}
}
