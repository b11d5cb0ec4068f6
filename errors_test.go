package errchain_test

// Test error types exercising the capability surface: plain errors, errors
// with causes, and errors carrying structured context.

type timeoutError struct {
	cause error
}

func (e *timeoutError) Error() string {
	return "operation timed out"
}

func (e *timeoutError) Unwrap() error {
	return e.cause
}

type validationError struct {
	msg   string
	ctx   map[string]any
	cause error
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Unwrap() error {
	return e.cause
}

func (e *validationError) Context() map[string]any {
	return e.ctx
}
