package entity

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrContactNotFound    = errors.New("contact not found")
	ErrAdminUserNotFound  = errors.New("admin user not found")
)
