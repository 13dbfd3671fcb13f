package daybookRepo

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound reports that no DayRecord exists for the requested date. It is
// a normal outcome (the date is fully available), never a connectivity fault.
var ErrNotFound = errors.New("daybook: no record for date")

// UnavailableError wraps a connectivity or authorization failure of the
// remote store. The availability layer treats it as the signal to fall back
// to the local store rather than as a hard failure.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("daybook: remote store unavailable during %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err represents remote-store unavailability.
func IsUnavailable(err error) bool {
	var u *UnavailableError
	return errors.As(err, &u)
}

// wrapRemoteErr maps a Firestore error: NotFound stays a distinct sentinel,
// everything else counts as the remote being unreachable for this operation.
func wrapRemoteErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return &UnavailableError{Op: op, Err: err}
}
