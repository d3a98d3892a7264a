package errs

import "fmt"

type Error interface {
	Error() string
	Code() int32
	Msg() string
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code int32
	msg  string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.Code(), err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), msg)
}

func New(code int32, msg string) Error {
	return &bizError{
		code: code,
		msg:  msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	if err1 == nil && err2 == nil {
		return true
	}

	if err1 == nil || err2 == nil {
		return false
	}

	return err1.Code() == err2.Code()
}

var (
	Success     = New(0, "success")
	ServerError = New(1_0001, "internal server error")
	ParamError  = New(1_0002, "param error")

	// StoreUnavailable is retryable: an identical request may succeed once
	// the durable store recovers.
	StoreUnavailable = New(1_0003, "store unavailable, please try again later")

	// CredentialProcessing is retryable: a hashing fault does not depend on
	// account state.
	CredentialProcessing = New(1_0004, "could not process credentials, please try again")

	// TokenIssuance is terminal for the attempt. After a successful signup
	// write the account still exists; the caller should log in instead of
	// signing up again.
	TokenIssuance = New(1_0005, "could not issue token, please log in instead")

	Unauthorized = New(1_0006, "unauthorized")

	AccountExists = New(2_0001, "account exists already, please login instead")

	// InvalidCredentials deliberately covers both an unknown email and a
	// wrong password so the response never confirms account existence.
	InvalidCredentials = New(2_0002, "credentials seem to be wrong")
)
