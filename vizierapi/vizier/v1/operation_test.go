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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestAny_JSON(t *testing.T) {
	payload, err := NewAny(&CheckTrialEarlyStoppingStateResponse{ShouldStop: true})
	require.NoError(t, err)
	assert.Equal(t, "type.googleapis.com/vizier.CheckTrialEarlyStoppingStateResponse", payload.TypeURL)
	assert.Equal(t, "vizier.CheckTrialEarlyStoppingStateResponse", payload.TypeName())

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type":"type.googleapis.com/vizier.CheckTrialEarlyStoppingStateResponse","shouldStop":true}`, string(b))

	actual := Any{}
	require.NoError(t, json.Unmarshal(b, &actual))
	assert.Equal(t, payload.TypeURL, actual.TypeURL)
	assert.JSONEq(t, `{"shouldStop":true}`, string(actual.Value))
}

func TestOperation_JSON(t *testing.T) {
	op := Operation{}
	err := json.Unmarshal([]byte(`{
		"name": "operations/suggest/1",
		"done": true,
		"error": {"code": "FAILED_PRECONDITION", "message": "study is not active"}
	}`), &op)
	require.NoError(t, err)

	assert.Equal(t, "operations/suggest/1", op.Name)
	assert.True(t, op.Done)
	if assert.NotNil(t, op.Error) {
		assert.Equal(t, codes.FailedPrecondition, op.Error.Code)
		assert.Equal(t, "study is not active", op.Error.Message)
	}

	op = Operation{}
	err = json.Unmarshal([]byte(`{"name": "operations/suggest/2", "error": {"code": 5}}`), &op)
	require.NoError(t, err)
	assert.False(t, op.Done)
	assert.Equal(t, codes.NotFound, op.Error.Code)
}

func TestOperation_Result(t *testing.T) {
	payload, err := NewAny(&SuggestTrialsResponse{})
	require.NoError(t, err)

	cases := []struct {
		desc     string
		op       Operation
		expected OperationResult
	}{
		{
			desc: "not done",
			op:   Operation{Name: "op", Response: payload},
		},
		{
			desc:     "response",
			op:       Operation{Name: "op", Done: true, Response: payload},
			expected: &OperationResponse{Payload: *payload},
		},
		{
			desc:     "error",
			op:       Operation{Name: "op", Done: true, Error: &Status{Code: codes.Internal, Message: "boom"}},
			expected: &OperationError{Status: Status{Code: codes.Internal, Message: "boom"}},
		},
		{
			desc:     "error wins",
			op:       Operation{Name: "op", Done: true, Error: &Status{Code: codes.Aborted}, Response: payload},
			expected: &OperationError{Status: Status{Code: codes.Aborted}},
		},
		{
			desc: "done without payload",
			op:   Operation{Name: "op", Done: true},
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			assert.Equal(t, c.expected, c.op.Result())
		})
	}
}
