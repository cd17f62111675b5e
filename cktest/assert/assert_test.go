package assert

import (
	"testing"

	"github.com/contractkit/contractkit/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		errWant  error
		errGot   error
		wantFail bool
	}{
		"same error": {
			errWant: errors.ErrEmpty,
			errGot:  errors.ErrEmpty,
		},
		"wrapped error matches the root": {
			errWant: errors.ErrEmpty,
			errGot:  errors.Wrap(errors.ErrEmpty, "no data"),
		},
		"different root errors": {
			errWant:  errors.ErrEmpty,
			errGot:   errors.ErrOverflow,
			wantFail: true,
		},
		"nil is nil": {
			errWant: nil,
			errGot:  nil,
		},
		"nil does not match an error": {
			errWant:  nil,
			errGot:   errors.ErrEmpty,
			wantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &mockT{}
			IsErr(mock, tc.errWant, tc.errGot)
			if mock.failed != tc.wantFail {
				t.Fatalf("want failure %v, got %v", tc.wantFail, mock.failed)
			}
		})
	}
}

func TestNil(t *testing.T) {
	mock := &mockT{}
	Nil(mock, nil)
	if mock.failed {
		t.Fatal("nil must pass")
	}

	var err error
	Nil(mock, err)
	if mock.failed {
		t.Fatal("nil error must pass")
	}

	Nil(mock, errors.ErrEmpty)
	if !mock.failed {
		t.Fatal("an error must fail")
	}
}

func TestPanics(t *testing.T) {
	mock := &mockT{}
	Panics(mock, func() { panic("boom") })
	if mock.failed {
		t.Fatal("a panicking function must pass")
	}
}

// mockT is a test double recording assertion failures instead of stopping
// the test execution.
type mockT struct {
	testing.TB
	failed bool
}

func (t *mockT) Helper() {}

func (t *mockT) Fatal(...interface{}) {
	t.failed = true
}

func (t *mockT) Fatalf(string, ...interface{}) {
	t.failed = true
}
