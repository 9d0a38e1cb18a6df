package admin

import "errors"

var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrAdminExists        = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("admin not found")
)
