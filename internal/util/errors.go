package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserDisabled        = errors.New("user disabled")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNotFound            = errors.New("record not found")
	ErrUnknownActivityKind = errors.New("unknown activity kind")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrFutureDate          = errors.New("date must not be in the future")
	ErrInvalidRange        = errors.New("invalid date range")
	ErrInvalidFileType     = errors.New("invalid file type")
	ErrFileTooLarge        = errors.New("file too large")
)
