package executor

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrMethodNotFound  = errors.New("method not found in service")
	ErrActionDenied    = errors.New("action denied by policy")
)
