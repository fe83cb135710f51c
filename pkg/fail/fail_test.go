package fail

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
)

func TestCatch(t *testing.T) {
	cases := map[string]struct {
		fn          func()
		expectedErr bool
	}{
		"NoFailure": {
			fn: func() {},
		},
		"Fail": {
			fn:          func() { Fail("value %d is out of range", 5) },
			expectedErr: true,
		},
		"UnlessHolds": {
			fn: func() { Unless(true, "never") },
		},
		"UnlessViolated": {
			fn:          func() { Unless(false, "violated") },
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := Catch(tc.fn)
			if tc.expectedErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrPrecondition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCatchPropagatesOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = Catch(func() { panic("boom") })
	})
	other := errors.New("other")
	assert.PanicsWithError(t, "other", func() {
		_ = Catch(func() { panic(other) })
	})
}

func TestFailLogs(t *testing.T) {
	var logged []string
	SetLogger(funcr.New(func(prefix, args string) {
		logged = append(logged, args)
	}, funcr.Options{Verbosity: 1}))
	defer SetLogger(logr.Discard())

	err := Catch(func() { Fail("bad input") })
	assert.Error(t, err)
	assert.Len(t, logged, 1)
	assert.Contains(t, logged[0], "bad input")
}
