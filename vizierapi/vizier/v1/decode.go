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

	"github.com/thestormforge/vizier-go/vizierapi"
)

// Message is implemented by the protocol messages that can be carried in an operation result
type Message interface {
	// MessageName returns the fully qualified protocol message name, e.g. "vizier.SuggestTrialsResponse".
	MessageName() string
}

// DecodeOperationResult decodes the result of a completed operation into a new message of type T. The payload
// type name must match the message name of T exactly. A failed operation is reported as an `ErrRemoteFailure`
// error, all other failures are `ErrDecoding` errors; no partially decoded value is ever returned.
func DecodeOperationResult[T any, PT interface {
	*T
	Message
}](result OperationResult) (*T, error) {
	switch r := result.(type) {
	case nil:
		return nil, vizierapi.NewError(vizierapi.ErrDecoding, nil, "operation result payload absent")

	case *OperationError:
		if r == nil {
			return nil, vizierapi.NewError(vizierapi.ErrDecoding, nil, "operation result payload absent")
		}
		return nil, &vizierapi.Error{
			Type:    vizierapi.ErrRemoteFailure,
			Code:    r.Status.Code,
			Message: r.Status.Message,
		}

	case *OperationResponse:
		if r == nil {
			return nil, vizierapi.NewError(vizierapi.ErrDecoding, nil, "operation result payload absent")
		}

		v := new(T)
		expected := PT(v).MessageName()
		if actual := r.Payload.TypeName(); actual != expected {
			return nil, vizierapi.NewError(vizierapi.ErrDecoding, nil, "unexpected operation result type %q, expected %q", actual, expected)
		}

		data := []byte(r.Payload.Value)
		if len(data) == 0 {
			data = []byte("{}")
		}
		if err := json.Unmarshal(data, v); err != nil {
			return nil, vizierapi.NewError(vizierapi.ErrDecoding, err, "malformed %s: %v", expected, err)
		}
		return v, nil

	default:
		return nil, vizierapi.NewError(vizierapi.ErrDecoding, nil, "unknown operation result %T", result)
	}
}
