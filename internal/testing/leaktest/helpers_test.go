package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures Errorf calls instead of failing the real test
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...interface{}) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() { time.Sleep(30 * time.Millisecond) }()

	checker.Check(0)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(0)
	assert.True(t, rec.failed)
}
