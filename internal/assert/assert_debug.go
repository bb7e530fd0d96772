//go:build debug

package assert

import "fmt"

// DEBUG is true in debug builds (built with -tags debug).
const DEBUG = true

// Assert panics with a formatted message if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
