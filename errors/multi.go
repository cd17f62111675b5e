package errors

import (
	"fmt"
	"strings"
)

// Append clubs together two errors into a single multi error instance. Any
// of the given errors can be nil or an existing multi error. Error order is
// preserved. Append of two nil errors returns nil.
//
// Use Append to collect all violations instead of returning after the first
// one:
//
//	var err error
//	err = errors.Append(err, validateName(name))
//	err = errors.Append(err, validateAmount(amount))
//	return err
func Append(a, b error) error {
	var errs multiError
	errs = errs.append(a)
	errs = errs.append(b)
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}

type multiError []error

func (errs multiError) append(err error) multiError {
	switch e := err.(type) {
	case nil:
		return errs
	case multiError:
		// Flatten, so that a multi error never nests another one.
		return append(errs, e...)
	default:
		return append(errs, e)
	}
}

func (errs multiError) Error() string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = fmt.Sprintf("\t* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n%s", len(errs), strings.Join(msgs, "\n"))
}

// Unpack implements the unpacker interface and gives access to all member
// errors of this collection.
func (errs multiError) Unpack() []error {
	return errs
}
