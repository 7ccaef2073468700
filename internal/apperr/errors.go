package apperr

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain — домен ошибок в errdetails.ErrorInfo.
const Domain = "tour-marketplace"

// Error — доменная ошибка с кодом.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is сравнивает ошибки по коду, поэтому errors.Is(err, ErrNotFound) верно для любого NOT_FOUND.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// GRPCStatus позволяет status.FromError вернуть статус с ErrorInfo без дополнительного маппинга.
func (e *Error) GRPCStatus() *status.Status {
	st := status.New(e.Code.GRPCCode(), e.Message)
	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(e.Code),
		Domain: Domain,
	})
	if err != nil {
		return st
	}
	return withDetails
}

// Сентинелы для errors.Is.
var (
	ErrNotFound      = &Error{Code: CodeNotFound, Message: "not found"}
	ErrUnauthorized  = &Error{Code: CodeUnauthorized, Message: "unauthorized"}
	ErrInvalidAmount = &Error{Code: CodeInvalidAmount, Message: "invalid amount"}
	ErrAlreadyExists = &Error{Code: CodeAlreadyExists, Message: "already exists"}
	ErrNotVerified   = &Error{Code: CodeNotVerified, Message: "not verified"}
	ErrInternal      = &Error{Code: CodeInternal, Message: "internal"}
)

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func NotFound(message string) *Error      { return New(CodeNotFound, message) }
func Unauthorized(message string) *Error  { return New(CodeUnauthorized, message) }
func InvalidAmount(message string) *Error { return New(CodeInvalidAmount, message) }
func AlreadyExists(message string) *Error { return New(CodeAlreadyExists, message) }
func NotVerified(message string) *Error   { return New(CodeNotVerified, message) }

// Internal оборачивает сбой хранилища.
func Internal(message string, cause error) *Error {
	return Wrap(CodeInternal, message, cause)
}

// CodeOf возвращает код доменной ошибки; для прочих ошибок — CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
