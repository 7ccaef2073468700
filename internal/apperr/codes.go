// Package apperr описывает типизированные отказы операций маркетплейса.
package apperr

import "google.golang.org/grpc/codes"

// Code — машиночитаемый код отказа.
type Code string

const (
	CodeInternal      Code = "INTERNAL"
	CodeNotFound      Code = "NOT_FOUND"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeInvalidAmount Code = "INVALID_AMOUNT"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	CodeNotVerified   Code = "NOT_VERIFIED"
)

// GRPCCode сопоставляет доменный код коду gRPC.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNotFound:
		return codes.NotFound
	case CodeUnauthorized:
		// сюда же попадает "неверное состояние": исходный контракт их не различает
		return codes.PermissionDenied
	case CodeInvalidAmount:
		return codes.InvalidArgument
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeNotVerified:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}
