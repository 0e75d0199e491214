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
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestError_Error(t *testing.T) {
	cases := []struct {
		desc     string
		err      *Error
		expected string
	}{
		{
			desc:     "message",
			err:      &Error{Type: ErrDecoding, Message: "payload absent"},
			expected: "payload absent",
		},
		{
			desc:     "status includes code",
			err:      &Error{Type: ErrStatus, Code: codes.NotFound, Message: "study not found"},
			expected: "NotFound: study not found",
		},
		{
			desc:     "remote failure includes code",
			err:      &Error{Type: ErrRemoteFailure, Code: codes.Internal, Message: "boom"},
			expected: "Internal: boom",
		},
		{
			desc:     "cause only",
			err:      &Error{Type: ErrTransport, Err: fmt.Errorf("connection refused")},
			expected: "connection refused",
		},
		{
			desc:     "type only",
			err:      &Error{Type: ErrConfiguration},
			expected: "configuration",
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			assert.Equal(t, c.expected, c.err.Error())
		})
	}
}

func TestNewError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewError(ErrTransport, cause, "GET %s", "/v1/foo")

	assert.Equal(t, ErrTransport, err.Type)
	assert.Equal(t, codes.Unavailable, err.Code)
	assert.Equal(t, "GET /v1/foo", err.Message)
	assert.True(t, errors.Is(err, cause))
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewError(ErrDecoding, nil, "payload absent"))

	assert.True(t, IsType(err, ErrDecoding))
	assert.False(t, IsType(err, ErrTransport))
	assert.False(t, IsType(errors.New("other"), ErrDecoding))
	assert.False(t, IsType(nil, ErrDecoding))
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		desc     string
		err      error
		expected codes.Code
	}{
		{
			desc:     "nil",
			expected: codes.OK,
		},
		{
			desc:     "foreign",
			err:      errors.New("nope"),
			expected: codes.Unknown,
		},
		{
			desc:     "status",
			err:      &Error{Type: ErrStatus, Code: codes.NotFound},
			expected: codes.NotFound,
		},
		{
			desc:     "wrapped",
			err:      fmt.Errorf("get study: %w", &Error{Type: ErrStatus, Code: codes.PermissionDenied}),
			expected: codes.PermissionDenied,
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			assert.Equal(t, c.expected, StatusCode(c.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{Type: ErrStatus, Code: codes.NotFound}))
	assert.False(t, IsNotFound(&Error{Type: ErrStatus, Code: codes.Internal}))
	assert.False(t, IsNotFound(nil))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Type: ErrStatus, Code: codes.Unauthenticated}))
	assert.True(t, IsUnauthorized(&Error{Type: ErrStatus, Code: codes.PermissionDenied}))
	assert.False(t, IsUnauthorized(&Error{Type: ErrStatus, Code: codes.NotFound}))
	assert.False(t, IsUnauthorized(nil))
}

func TestCodeFromHTTPStatus(t *testing.T) {
	cases := []struct {
		status   int
		expected codes.Code
	}{
		{http.StatusOK, codes.OK},
		{http.StatusBadRequest, codes.InvalidArgument},
		{http.StatusUnauthorized, codes.Unauthenticated},
		{http.StatusForbidden, codes.PermissionDenied},
		{http.StatusNotFound, codes.NotFound},
		{http.StatusConflict, codes.AlreadyExists},
		{http.StatusTooManyRequests, codes.ResourceExhausted},
		{http.StatusServiceUnavailable, codes.Unavailable},
		{http.StatusTeapot, codes.Unknown},
	}
	for _, c := range cases {
		t.Run(http.StatusText(c.status), func(t *testing.T) {
			assert.Equal(t, c.expected, CodeFromHTTPStatus(c.status))
		})
	}
}
