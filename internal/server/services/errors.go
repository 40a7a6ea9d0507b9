package services

// BadRequestError is a client-caused failure whose message is safe to
// return to the caller.
type BadRequestError struct {
	Detail string
}

func (e *BadRequestError) Error() string { return e.Detail }

func badRequest(detail string) error { return &BadRequestError{Detail: detail} }
