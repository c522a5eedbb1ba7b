package mimepart

import (
	"errors"
	"fmt"
)

// FormatError reports a multipart Content-Type which cannot be used: it lacks
// a subtype or a boundary. Such a message is malformed and retrying without
// changing it will fail again.
type FormatError struct {
	ContentType string
	Reason      string
	Err         error
}

func (err *FormatError) Error() string {
	msg := fmt.Sprintf("mimepart: invalid multipart Content-Type %q: %s", err.ContentType, err.Reason)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

// Permanent always returns true.
func (err *FormatError) Permanent() bool {
	return true
}

// IsPermanent reports whether err, or an error it wraps, is a permanent
// failure.
func IsPermanent(err error) bool {
	var perm interface{ Permanent() bool }
	return errors.As(err, &perm) && perm.Permanent()
}
