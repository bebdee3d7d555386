package services

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrFilterRequired = errors.New("a userId or admin/manager role is required to fetch expenses")
)
