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
	"github.com/thestormforge/vizier-go/vizierapi"
	"google.golang.org/grpc/codes"
)

func TestDecodeOperationResult(t *testing.T) {
	suggestion, err := NewAny(&SuggestTrialsResponse{
		Trials:     []Trial{{Name: "owners/o/studies/s/trials/1", ID: "1", State: TrialStateActive}},
		StudyState: StudyStateActive,
	})
	require.NoError(t, err)

	cases := []struct {
		desc     string
		result   OperationResult
		expected *SuggestTrialsResponse
		errType  vizierapi.ErrorType
		errCode  codes.Code
	}{
		{
			desc:   "response",
			result: &OperationResponse{Payload: *suggestion},
			expected: &SuggestTrialsResponse{
				Trials:     []Trial{{Name: "owners/o/studies/s/trials/1", ID: "1", State: TrialStateActive}},
				StudyState: StudyStateActive,
			},
		},
		{
			desc:     "empty response",
			result:   &OperationResponse{Payload: Any{TypeURL: "type.googleapis.com/vizier.SuggestTrialsResponse"}},
			expected: &SuggestTrialsResponse{},
		},
		{
			desc:    "absent",
			result:  nil,
			errType: vizierapi.ErrDecoding,
			errCode: codes.DataLoss,
		},
		{
			desc:    "remote failure",
			result:  &OperationError{Status: Status{Code: codes.ResourceExhausted, Message: "too many trials"}},
			errType: vizierapi.ErrRemoteFailure,
			errCode: codes.ResourceExhausted,
		},
		{
			desc:    "type mismatch",
			result:  &OperationResponse{Payload: Any{TypeURL: "type.googleapis.com/vizier.Trial", Value: json.RawMessage(`{}`)}},
			errType: vizierapi.ErrDecoding,
			errCode: codes.DataLoss,
		},
		{
			desc:    "prefix mismatch",
			result:  &OperationResponse{Payload: Any{TypeURL: "type.googleapis.com/other.SuggestTrialsResponse", Value: json.RawMessage(`{}`)}},
			errType: vizierapi.ErrDecoding,
			errCode: codes.DataLoss,
		},
		{
			desc:    "malformed",
			result:  &OperationResponse{Payload: Any{TypeURL: "type.googleapis.com/vizier.SuggestTrialsResponse", Value: json.RawMessage(`{"trials":"nope"}`)}},
			errType: vizierapi.ErrDecoding,
			errCode: codes.DataLoss,
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			actual, err := DecodeOperationResult[SuggestTrialsResponse](c.result)
			if c.errType != "" {
				assert.Nil(t, actual)
				assert.True(t, vizierapi.IsType(err, c.errType), "expected %s, got %v", c.errType, err)
				assert.Equal(t, c.errCode, vizierapi.StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestDecodeOperationResult_Message(t *testing.T) {
	payload, err := NewAny(&Trial{Name: "owners/o/studies/s/trials/1"})
	require.NoError(t, err)

	_, err = DecodeOperationResult[SuggestTrialsResponse](&OperationResponse{Payload: *payload})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vizier.Trial")
	assert.Contains(t, err.Error(), "vizier.SuggestTrialsResponse")

	_, err = DecodeOperationResult[SuggestTrialsResponse](&OperationError{Status: Status{Code: codes.Unavailable, Message: "pythia unavailable"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pythia unavailable")
}
