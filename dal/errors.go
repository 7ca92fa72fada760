package dal

import (
	"fmt"
)

// StorageError wraps any failed read or write against the store, carrying the
// operation and, where there is one, the username it concerned.
type StorageError struct {
	Op      string
	Subject string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s '%s': %v", e.Op, e.Subject, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Subject: subject, Err: err}
}
