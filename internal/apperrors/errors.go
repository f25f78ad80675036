package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidReference indicates that a foreign key points at a row that does not exist.
var ErrInvalidReference = errors.New("referenced resource does not exist")

// ErrInvalidState indicates that the operation is not legal for the entity's current status or tipo.
var ErrInvalidState = errors.New("operation not allowed in current state")

// ErrDependencyConflict indicates that a hard delete is blocked by dependent rows.
var ErrDependencyConflict = errors.New("resource has dependents")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
