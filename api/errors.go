package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks failures to build, send or decode a request. The
	// underlying cause is wrapped alongside it.
	ErrTransport = errors.New("kromer: transport failure")

	// ErrURL marks a base URL or endpoint path that is not a valid URL.
	ErrURL = errors.New("kromer: invalid url")
)

// KristError is an error reported by the node in an {error, message} body.
type KristError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *KristError) Error() string {
	return fmt.Sprintf("krist error(%s): %s", e.Code, e.Message)
}

// IsKristError reports whether err is a server-reported error with the given
// code. An empty code matches any server-reported error.
func IsKristError(err error, code string) bool {
	var kerr *KristError
	if !errors.As(err, &kerr) {
		return false
	}
	return code == "" || kerr.Code == code
}
