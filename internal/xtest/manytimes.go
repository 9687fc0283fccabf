package xtest

import (
	"sync"
	"testing"
	"time"
)

// TestManyTimes repeats the test until the time budget is over, the test runs at least once
func TestManyTimes(t testing.TB, test TestFunc, opts ...ManyTimesOption) {
	t.Helper()

	options := manyTimesOptions{
		timeout: time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	start := time.Now()
	for {
		runTest(t, test)

		if time.Since(start) > options.timeout {
			return
		}
	}
}

type manyTimesOptions struct {
	timeout time.Duration
}

type ManyTimesOption func(o *manyTimesOptions)

func StopAfter(timeout time.Duration) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.timeout = timeout
	}
}

type TestFunc func(t testing.TB)

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}

	defer tw.doCleanup()

	test(tw)
}

type testWrapper struct {
	testing.TB

	m       sync.Mutex
	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	for len(tw.cleanup) > 0 {
		last := tw.cleanup[len(tw.cleanup)-1]
		tw.cleanup = tw.cleanup[:len(tw.cleanup)-1]

		last()
	}
}
