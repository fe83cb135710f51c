// Package fail reports violated preconditions. A violation is a caller bug:
// the current operation is aborted with a panic carrying the cause.
package fail

import (
	"sync"

	"github.com/go-logr/logr"
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrPrecondition is wrapped by every error raised through Fail.
var ErrPrecondition = ierrors.New("precondition violated")

var (
	m   sync.RWMutex
	log = logr.Discard()
)

// SetLogger sets the logger used by the library packages.
func SetLogger(l logr.Logger) {
	m.Lock()
	defer m.Unlock()
	log = l
}

// Logger returns the logger used by the library packages.
func Logger() logr.Logger {
	m.RLock()
	defer m.RUnlock()
	return log
}

// Fail aborts the current operation. The panic value is an error wrapping
// ErrPrecondition with the formatted cause.
func Fail(format string, args ...any) {
	err := ierrors.Wrapf(ErrPrecondition, format, args...)
	Logger().V(1).Info("precondition violated", "cause", err.Error())
	panic(err)
}

// Unless calls Fail when cond does not hold.
func Unless(cond bool, format string, args ...any) {
	if !cond {
		Fail(format, args...)
	}
}

// Catch runs fn and returns the precondition violation it raised, if any.
// Other panics are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && ierrors.Is(e, ErrPrecondition) {
			err = e
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
