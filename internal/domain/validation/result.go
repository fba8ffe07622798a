package validation

// Result is the outcome of checking one field value.
// Valid is true iff Errors is empty.
type Result struct {
	Valid  bool
	Errors []string
}

// newResult builds a Result from the collected messages. A nil slice is
// normalized to an empty one so encoded results always carry an array.
func newResult(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// single is the short-circuit result for presence failures.
func single(msg string) Result {
	return Result{Valid: false, Errors: []string{msg}}
}

// NewResult builds a Result from a list of messages. Callers outside this
// package use it to compose form-level checks with the same shape.
func NewResult(errs ...string) Result {
	if len(errs) == 0 {
		return newResult(nil)
	}
	return newResult(errs)
}
