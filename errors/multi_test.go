package errors

import (
	"strings"
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs     []error
		wantNil  bool
		wantMsgs []string
	}{
		"nil and nil is nil": {
			errs:    []error{nil, nil},
			wantNil: true,
		},
		"single error is returned unchanged": {
			errs:     []error{nil, ErrOverflow},
			wantMsgs: []string{"value out of range"},
		},
		"two errors are clubbed together": {
			errs:     []error{ErrOverflow, ErrDenom},
			wantMsgs: []string{"value out of range", "invalid denomination"},
		},
		"nested multi error is flattened": {
			errs: []error{
				Append(ErrOverflow, ErrDenom),
				ErrState,
			},
			wantMsgs: []string{"value out of range", "invalid denomination", "invalid state"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var err error
			for _, e := range tc.errs {
				err = Append(err, e)
			}
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %+v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("want an error, got nil")
			}
			for _, msg := range tc.wantMsgs {
				if !strings.Contains(err.Error(), msg) {
					t.Errorf("message %q not found in %q", msg, err.Error())
				}
			}
		})
	}
}

func TestAppendPreservesRootMatching(t *testing.T) {
	err := Append(
		Wrap(ErrDenom, "coin"),
		Wrap(ErrState, "not sorted"),
	)
	if !ErrDenom.Is(err) {
		t.Error("first member root not matched")
	}
	if !ErrState.Is(err) {
		t.Error("second member root not matched")
	}
	if ErrOverflow.Is(err) {
		t.Error("foreign root must not be matched")
	}
}
