package registry

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrAlreadyRegistered = errors.New("introspection tools already registered")
	ErrToolNotFound      = errors.New("tool not found")
	ErrHandlerNotFound   = errors.New("handler not found")
	ErrInvalidTool       = errors.New("invalid tool definition")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrExecutionFailed   = errors.New("tool execution failed")
)
