//go:build !debug

package assert

// DEBUG is false in release builds; Assert becomes a no-op the compiler can
// eliminate entirely.
const DEBUG = false

// Assert is a no-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
