/*
Package errors implements the error handling used across contractkit.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when absolutely necessary. Each error returned by
a helper wraps one of the root errors declared here, which allows the caller
to classify a failure without string matching:

	if errors.ErrOverflow.Is(err) {
		...
	}

If you need to register a custom root error, use Register(code, description).
The code allows clients of a contract to distinguish failure classes and act
accordingly.

There is also support for stack traces. Ensure you create the error using
ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation so a
stack trace is attached. If you wrap multiple times, only the first wrap
records the trace. Use `%+v` formatting to print an error together with
its stack trace.
*/
package errors
