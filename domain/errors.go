package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrInvalidOperation will throw if the operation is not allowed for the caller,
	// e.g. a user trying to follow themselves
	ErrInvalidOperation = errors.New("operation is not allowed")
	// ErrCacheMiss will throw if the requested item is not in cache
	ErrCacheMiss = errors.New("requested item is not in cache")
)
