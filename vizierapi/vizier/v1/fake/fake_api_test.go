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

package fake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thestormforge/vizier-go/vizierapi"
	v1 "github.com/thestormforge/vizier-go/vizierapi/vizier/v1"
	"google.golang.org/grpc/codes"
)

func newStudy(t *testing.T, client *v1.VizierClient, name string) v1.StudyName {
	spec := v1.NewStudySpecBuilder("RANDOM_SEARCH", v1.ObservationNoiseLow).
		WithMetricSpecs([]v1.MetricSpec{v1.MaximizeMetric("accuracy")}).
		WithParameters([]v1.ParameterSpec{v1.DoubleParameter("learning_rate", 0.001, 0.1, v1.ScaleTypeLog)}).
		Build()

	s, err := client.CreateStudy(context.Background(), client.NewCreateStudyRequest().WithDisplayName(name).WithStudySpec(spec))
	require.NoError(t, err)
	return v1.StudyNameOf(&s)
}

func TestFakeAPI_TrialLifecycle(t *testing.T) {
	ctx := context.Background()
	api := NewFakeAPI()
	client := v1.NewVizierClient("o", api)
	study := newStudy(t, client, "mnist")
	assert.Equal(t, "owners/o/studies/mnist", study.String())

	resp, err := client.SuggestTrials(ctx, client.NewSuggestTrialsRequest(study, 2, "worker-0"))
	require.NoError(t, err)
	require.Len(t, resp.Trials, 2)
	assert.Equal(t, v1.StudyStateActive, resp.StudyState)
	assert.Equal(t, "worker-0", resp.Trials[0].ClientID)
	assert.Equal(t, 1, api.Calls("SuggestTrials"))
	assert.Equal(t, 1, api.Calls("GetOperation"))

	first := v1.TrialNameOf(&resp.Trials[0])
	second := v1.TrialNameOf(&resp.Trials[1])
	assert.Equal(t, study, first.Study())

	m := v1.Measurement{StepCount: 1, Metrics: []v1.Metric{{MetricID: "accuracy", Value: 0.8}}}
	tr, err := client.AddTrialMeasurement(ctx, first, m)
	require.NoError(t, err)
	assert.Len(t, tr.Measurements, 1)

	tr, err = client.CompleteTrial(ctx, first, v1.FinalMeasurement(m))
	require.NoError(t, err)
	assert.Equal(t, v1.TrialStateSucceeded, tr.State)

	_, err = client.CompleteTrial(ctx, first, nil)
	assert.Equal(t, codes.FailedPrecondition, vizierapi.StatusCode(err))

	tr, err = client.CompleteTrial(ctx, second, v1.InfeasibleReason("diverged"))
	require.NoError(t, err)
	assert.Equal(t, v1.TrialStateInfeasible, tr.State)
	assert.Equal(t, "diverged", tr.InfeasibleReason)

	optimal, err := client.ListOptimalTrials(ctx, study)
	require.NoError(t, err)
	if assert.Len(t, optimal.OptimalTrials, 1) {
		assert.Equal(t, first.String(), optimal.OptimalTrials[0].Name)
	}

	require.NoError(t, client.DeleteTrial(ctx, second))
	_, err = client.GetTrial(ctx, second)
	assert.True(t, vizierapi.IsNotFound(err))
}

func TestFakeAPI_EarlyStopping(t *testing.T) {
	ctx := context.Background()
	api := NewFakeAPI()
	client := v1.NewVizierClient("o", api)
	study := newStudy(t, client, "s")

	tr, err := client.CreateTrial(ctx, study, v1.Trial{
		Parameters: []v1.TrialParameter{{ParameterID: "learning_rate", Value: v1.FromFloat64(0.01)}},
	})
	require.NoError(t, err)
	assert.Equal(t, v1.TrialStateRequested, tr.State)
	name := v1.TrialNameOf(&tr)

	stop, err := client.ShouldTrialStop(ctx, name, 0)
	require.NoError(t, err)
	assert.False(t, stop)

	_, err = client.StopTrial(ctx, name)
	require.NoError(t, err)

	stop, err = client.ShouldTrialStop(ctx, name, 0)
	require.NoError(t, err)
	assert.True(t, stop)
}

func TestFakeAPI_ScriptOperation(t *testing.T) {
	ctx := context.Background()
	api := NewFakeAPI()
	client := v1.NewVizierClient("o", api)
	study := newStudy(t, client, "s")

	api.ScriptOperation("operations/1",
		NotDone(),
		Failed(codes.ResourceExhausted, "suggestion quota exceeded"),
	)

	_, err := client.SuggestTrials(ctx, client.NewSuggestTrialsRequest(study, 1, ""))
	assert.True(t, vizierapi.IsType(err, vizierapi.ErrRemoteFailure), "expected remote failure, got %v", err)
	assert.Equal(t, codes.ResourceExhausted, vizierapi.StatusCode(err))
	assert.Equal(t, 2, api.Calls("GetOperation"))

	// Once the script is exhausted the real state is reported
	result, err := client.GetOperation(ctx, "operations/1")
	require.NoError(t, err)
	resp, err := v1.DecodeOperationResult[v1.SuggestTrialsResponse](result)
	require.NoError(t, err)
	assert.Len(t, resp.Trials, 1)

	api.ScriptOperation("operations/2", Error(vizierapi.NewError(vizierapi.ErrTransport, nil, "connection refused")))
	_, err = client.SuggestTrials(ctx, client.NewSuggestTrialsRequest(study, 1, ""))
	assert.True(t, vizierapi.IsType(err, vizierapi.ErrTransport), "expected transport error, got %v", err)
}

func TestFakeAPI_Paging(t *testing.T) {
	ctx := context.Background()
	api := NewFakeAPI()
	client := v1.NewVizierClient("o", api)
	for _, name := range []string{"a", "b", "c"} {
		newStudy(t, client, name)
	}

	cases := []struct {
		desc     string
		pageSize int32
		token    string
		expected []string
		next     string
		err      bool
	}{
		{desc: "all", expected: []string{"a", "b", "c"}},
		{desc: "first page", pageSize: 2, expected: []string{"a", "b"}, next: "2"},
		{desc: "last page", pageSize: 2, token: "2", expected: []string{"c"}},
		{desc: "exact", pageSize: 3, expected: []string{"a", "b", "c"}},
		{desc: "bad token", token: "x", err: true},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			lst, err := client.ListStudies(ctx, c.pageSize, c.token)
			if c.err {
				assert.Equal(t, codes.InvalidArgument, vizierapi.StatusCode(err))
				return
			}
			require.NoError(t, err)

			var actual []string
			for _, s := range lst.Studies {
				actual = append(actual, s.DisplayName)
			}
			assert.Equal(t, c.expected, actual)
			assert.Equal(t, c.next, lst.NextPageToken)
		})
	}

	studies, err := client.ListAllStudies(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, studies, 3)
}

func TestFakeAPI_Studies(t *testing.T) {
	ctx := context.Background()
	api := NewFakeAPI()
	client := v1.NewVizierClient("o", api)
	study := newStudy(t, client, "s")

	s, err := client.GetStudy(ctx, study)
	require.NoError(t, err)
	assert.Equal(t, v1.StudyStateActive, s.State)
	assert.NotNil(t, s.CreateTime)

	spec := v1.NewStudySpecBuilder("RANDOM_SEARCH", v1.ObservationNoiseLow).Build()
	_, err = client.CreateStudy(ctx, client.NewCreateStudyRequest().WithDisplayName("s").WithStudySpec(spec))
	assert.Equal(t, codes.AlreadyExists, vizierapi.StatusCode(err))

	require.NoError(t, client.DeleteStudy(ctx, study))
	_, err = client.GetStudy(ctx, study)
	assert.True(t, vizierapi.IsNotFound(err))

	_, err = client.SuggestTrials(ctx, client.NewSuggestTrialsRequest(study, 1, ""))
	assert.True(t, vizierapi.IsNotFound(err))
	assert.Equal(t, 0, api.Calls("GetOperation"))
}
