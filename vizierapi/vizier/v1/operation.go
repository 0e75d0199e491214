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

package v1

import (
	"encoding/json"
	"strings"

	"google.golang.org/grpc/codes"
)

const (
	// protoPackage is the protocol package of the Vizier messages
	protoPackage = "vizier"
	// typeURLPrefix is prepended to message names when constructing a type URL
	typeURLPrefix = "type.googleapis.com/"
)

// Operation is a long-running operation started by the service
type Operation struct {
	// The server assigned name of the operation.
	Name string `json:"name"`
	// Service specific progress information.
	Metadata *Any `json:"metadata,omitempty"`
	// True once the operation has completed, either successfully or with an error.
	Done bool `json:"done,omitempty"`
	// The failure status of a completed operation.
	Error *Status `json:"error,omitempty"`
	// The response payload of a successfully completed operation.
	Response *Any `json:"response,omitempty"`
}

// Result returns the outcome of the operation; it is nil if the operation is not done or completed without a payload
func (op *Operation) Result() OperationResult {
	if !op.Done {
		return nil
	}
	if op.Error != nil {
		return &OperationError{Status: *op.Error}
	}
	if op.Response != nil {
		return &OperationResponse{Payload: *op.Response}
	}
	return nil
}

// GetOperationRequest fetches the current state of an operation
type GetOperationRequest struct {
	Name string `json:"name"`
}

// Status is a failure reported by the service
type Status struct {
	// The canonical status code, either numeric or the upper case name (e.g. "NOT_FOUND") on the wire.
	Code codes.Code `json:"code"`
	// The developer facing error message.
	Message string `json:"message,omitempty"`
	// Additional error details.
	Details []Any `json:"details,omitempty"`
}

// Any is a message of arbitrary type; the "@type" member identifies the message and the remaining
// members are retained as JSON for later decoding.
type Any struct {
	TypeURL string
	Value   json.RawMessage
}

// NewAny encodes the supplied message
func NewAny(msg Message) (*Any, error) {
	value, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return &Any{TypeURL: typeURLPrefix + msg.MessageName(), Value: value}, nil
}

// TypeName returns the fully qualified message name, the portion of the type URL after the last "/"
func (a *Any) TypeName() string {
	return a.TypeURL[strings.LastIndex(a.TypeURL, "/")+1:]
}

// MarshalJSON writes the "@type" member along with the members of the value.
func (a Any) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage)
	if len(a.Value) > 0 {
		if err := json.Unmarshal(a.Value, &m); err != nil {
			return nil, err
		}
	}
	if m == nil {
		m = make(map[string]json.RawMessage)
	}
	t, err := json.Marshal(a.TypeURL)
	if err != nil {
		return nil, err
	}
	m["@type"] = t
	return json.Marshal(m)
}

// UnmarshalJSON separates the "@type" member from the members of the value.
func (a *Any) UnmarshalJSON(b []byte) error {
	m := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}

	a.TypeURL = ""
	if t, ok := m["@type"]; ok {
		if err := json.Unmarshal(t, &a.TypeURL); err != nil {
			return err
		}
		delete(m, "@type")
	}

	value, err := json.Marshal(m)
	if err != nil {
		return err
	}
	a.Value = value
	return nil
}

// OperationResult is the outcome of a completed operation, either an *OperationResponse or an *OperationError
type OperationResult interface {
	isOperationResult()
}

// OperationResponse is the payload of a successfully completed operation
type OperationResponse struct {
	Payload Any
}

// OperationError is the status of a failed operation
type OperationError struct {
	Status Status
}

func (*OperationResponse) isOperationResult() {}
func (*OperationError) isOperationResult()    {}
