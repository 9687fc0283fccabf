package xtest

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyTestMain runs the package tests and fails if goroutines are left running after them
func VerifyTestMain(m *testing.M, opts ...goleak.Option) {
	goleak.VerifyTestMain(m, opts...)
}

// CheckGoroutinesLeak registers a cleanup that reports goroutines started by the test and not finished
func CheckGoroutinesLeak(t testing.TB, opts ...goleak.Option) {
	t.Helper()

	ignore := goleak.IgnoreCurrent()
	t.Cleanup(func() {
		goleak.VerifyNone(t, append([]goleak.Option{ignore}, opts...)...)
	})
}
