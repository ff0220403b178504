package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/tagupdater/errors"
	"github.com/iov-one/tagupdater/tag"
)

// recorder implements Tester and remembers whether the assertion failed.
type recorder struct {
	failed bool
}

func (r *recorder) Helper()                       {}
func (r *recorder) Fatal(...interface{})          { r.failed = true }
func (r *recorder) Fatalf(string, ...interface{}) { r.failed = true }

func TestAssertions(t *testing.T) {
	cases := map[string]struct {
		fn       func(Tester)
		wantFail bool
	}{
		"nil value":       {fn: func(t Tester) { Nil(t, nil) }},
		"nil error":       {fn: func(t Tester) { Nil(t, error(nil)) }},
		"non nil value":   {fn: func(t Tester) { Nil(t, fmt.Errorf("x")) }, wantFail: true},
		"equal values":    {fn: func(t Tester) { Equal(t, 1, 1) }},
		"different types": {fn: func(t Tester) { Equal(t, int32(1), int64(1)) }, wantFail: true},
		"panics":          {fn: func(t Tester) { Panics(t, func() { panic("x") }) }},
		"does not panic":  {fn: func(t Tester) { Panics(t, func() {}) }, wantFail: true},
		"matching error": {
			fn: func(t Tester) { IsErr(t, errors.ErrState, errors.Wrap(errors.ErrState, "x")) },
		},
		"other error": {
			fn:       func(t Tester) { IsErr(t, errors.ErrState, errors.ErrInput) },
			wantFail: true,
		},
		"equal tags": {
			fn: func(t Tester) { TagEqual(t, tag.Map{"a": "b"}, tag.NewCompound(map[string]interface{}{"a": "b"})) },
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var r recorder
			tc.fn(&r)
			if r.failed != tc.wantFail {
				t.Fatalf("want failure %v, got %v", tc.wantFail, r.failed)
			}
		})
	}
}
