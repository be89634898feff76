package service

import "errors"

// 业务错误，handler 通过 errors.Is 映射为 HTTP 状态码
var (
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)
