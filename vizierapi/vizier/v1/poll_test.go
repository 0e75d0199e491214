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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVizierClient_WaitForOperation(t *testing.T) {
	fetchErr := errors.New("connection reset")
	response := &CheckTrialEarlyStoppingStateResponse{ShouldStop: true}

	cases := []struct {
		desc     string
		retries  int
		op       Operation
		steps    []stubStep
		done     bool
		sleeps   []time.Duration
		getCalls int
	}{
		{
			desc:     "exhausted",
			retries:  2,
			op:       Operation{Name: "op"},
			steps:    []stubStep{failed(fetchErr), failed(fetchErr), failed(fetchErr)},
			sleeps:   []time.Duration{500 * time.Millisecond, 1000 * time.Millisecond},
			getCalls: 3,
		},
		{
			desc:     "no retries",
			retries:  0,
			op:       Operation{Name: "op"},
			steps:    []stubStep{failed(fetchErr)},
			sleeps:   []time.Duration{},
			getCalls: 1,
		},
		{
			desc:     "recovered",
			retries:  2,
			op:       Operation{Name: "op"},
			steps:    []stubStep{failed(fetchErr), done(t, response)},
			done:     true,
			sleeps:   []time.Duration{500 * time.Millisecond},
			getCalls: 2,
		},
		{
			desc:     "first fetch done",
			retries:  2,
			op:       Operation{Name: "op"},
			steps:    []stubStep{done(t, response)},
			done:     true,
			sleeps:   []time.Duration{},
			getCalls: 1,
		},
		{
			desc:     "already done",
			retries:  2,
			op:       done(t, response).op,
			done:     true,
			sleeps:   []time.Duration{},
			getCalls: 0,
		},
		{
			desc:     "not done refetched immediately",
			retries:  0,
			op:       Operation{Name: "op"},
			steps:    []stubStep{notDone(), notDone(), done(t, response)},
			done:     true,
			sleeps:   []time.Duration{},
			getCalls: 3,
		},
		{
			desc:     "shared budget",
			retries:  2,
			op:       Operation{Name: "op"},
			steps:    []stubStep{failed(fetchErr), notDone(), failed(fetchErr), failed(fetchErr)},
			sleeps:   []time.Duration{500 * time.Millisecond, 500 * time.Millisecond},
			getCalls: 4,
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			api := newStubAPI(c.steps...)
			client, sleeps := newTestClient(t, api)

			before := testutil.ToFloat64(OperationPollRetriesTotal)
			result, err := client.WaitForOperation(context.Background(), c.retries, c.op)
			if c.done {
				require.NoError(t, err)
				actual, err := DecodeOperationResult[CheckTrialEarlyStoppingStateResponse](result)
				require.NoError(t, err)
				assert.Equal(t, response, actual)
			} else {
				assert.Equal(t, fetchErr, err)
				assert.Nil(t, result)
			}

			assert.Equal(t, c.sleeps, *sleeps)
			assert.Equal(t, c.getCalls, api.calls["GetOperation"])
			assert.Equal(t, float64(len(c.sleeps)), testutil.ToFloat64(OperationPollRetriesTotal)-before)
		})
	}
}

func TestVizierClient_WaitForOperation_Canceled(t *testing.T) {
	api := newStubAPI(failed(errors.New("connection reset")))
	client, _ := newTestClient(t, api)
	client.sleep = sleepContext

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.WaitForOperation(ctx, 3, Operation{Name: "op"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, api.calls["GetOperation"])
}

func TestVizierClient_GetOperation(t *testing.T) {
	api := newStubAPI(notDone(), done(t, &SuggestTrialsResponse{}))
	client, sleeps := newTestClient(t, api)

	result, err := client.GetOperation(context.Background(), "op")
	require.NoError(t, err)
	assert.Nil(t, result)

	result, err = client.GetOperation(context.Background(), "op")
	require.NoError(t, err)
	assert.IsType(t, &OperationResponse{}, result)

	assert.Empty(t, *sleeps)
	assert.Equal(t, 2, api.calls["GetOperation"])
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, sleepContext(ctx, time.Hour))
}
