package domain

import "errors"

// Ошибки хранилища сотрудников
var (
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrRead                = errors.New("read error")
	ErrWrite               = errors.New("write error")
	ErrConstraintViolation = errors.New("unique constraint violation")
	ErrEmployeeNotFound    = errors.New("employee not found")
)
