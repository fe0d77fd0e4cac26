package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

func (en *Errno) Error() string {
	return en.err.Error()
}

func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// Domain errors. Auth failures stay coarse on purpose: a caller cannot
// tell a missing account from a wrong password, nor an expired token
// from a tampered one.
var (
	ErrInvalidCredentials = NewErrno(codes.Unauthenticated, errors.New("invalid credentials"))
	ErrNotAuthentication  = NewErrno(codes.Unauthenticated, errors.New("not authenticated"))
	ErrForbidden          = NewErrno(codes.PermissionDenied, errors.New("forbidden"))

	ErrEmailRegistered = NewErrno(codes.Code(1001), errors.New("email already registered"))
	ErrCodeRegistered  = NewErrno(codes.Code(1002), errors.New("class code already registered"))
	ErrRoleMismatch    = NewErrno(codes.Code(1003), errors.New("user role does not match the requested roster"))
	ErrAlreadyMember   = NewErrno(codes.Code(1004), errors.New("user is already a member of the class"))
	ErrNotAMember      = NewErrno(codes.NotFound, errors.New("user is not a member of the class"))
	ErrRoleImmutable   = NewErrno(codes.Code(1005), errors.New("role cannot be changed after creation"))
)

var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("update failed"))
)
