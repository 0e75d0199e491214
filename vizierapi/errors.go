/*
Copyright 2022 GramLabs, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vizierapi

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// ErrorType classifies the failures reported by this client
type ErrorType string

const (
	// ErrTransport is a failure of the HTTP round trip itself (connection refused, timeouts, etc.)
	ErrTransport ErrorType = "transport"
	// ErrInvalidIdentifier is a malformed endpoint address supplied when constructing a client
	ErrInvalidIdentifier ErrorType = "invalid-identifier"
	// ErrDecoding is a response or operation payload that is absent, of the wrong type, or malformed
	ErrDecoding ErrorType = "decoding"
	// ErrRemoteFailure is an operation that completed on the server but reported a failure status
	ErrRemoteFailure ErrorType = "remote-failure"
	// ErrConfiguration is a required request field that was never set before building
	ErrConfiguration ErrorType = "configuration"
	// ErrStatus is a status returned by the service in response to a call
	ErrStatus ErrorType = "status"
)

// Error is the single error type returned by the Vizier client
type Error struct {
	// Type is the classification of the error
	Type ErrorType
	// Code is the canonical status code, when one is available
	Code codes.Code
	// Message is the human readable description of the failure
	Message string
	// Location is the URL of the request that failed, if any
	Location string
	// Err is the underlying cause, if any
	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = string(e.Type)
	}
	if e.Type == ErrStatus || e.Type == ErrRemoteFailure {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError returns a new error of the specified type wrapping an optional cause
func NewError(t ErrorType, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    t,
		Code:    codeForType(t),
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// IsType checks to see if the error (or anything it wraps) is a client error of the specified type
func IsType(err error, t ErrorType) bool {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Type == t
	}
	return false
}

// StatusCode returns the canonical status code of the error, `codes.OK` for nil and `codes.Unknown` for foreign errors
func StatusCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Code
	}
	return codes.Unknown
}

// IsNotFound check to see if the error is a "not found" status
func IsNotFound(err error) bool {
	return err != nil && StatusCode(err) == codes.NotFound
}

// IsUnauthorized check to see if the error is an "unauthorized" error
func IsUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	switch StatusCode(err) {
	case codes.Unauthenticated, codes.PermissionDenied:
		return true
	}
	return false
}

// CodeFromHTTPStatus maps an HTTP status to the closest canonical status code
func CodeFromHTTPStatus(status int) codes.Code {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return codes.OK
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.AlreadyExists
	case http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusRequestedRangeNotSatisfiable:
		return codes.OutOfRange
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case 499:
		return codes.Canceled
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	case http.StatusInternalServerError:
		return codes.Internal
	}
	return codes.Unknown
}

func codeForType(t ErrorType) codes.Code {
	switch t {
	case ErrTransport:
		return codes.Unavailable
	case ErrInvalidIdentifier, ErrConfiguration:
		return codes.InvalidArgument
	case ErrDecoding:
		return codes.DataLoss
	}
	return codes.Unknown
}
