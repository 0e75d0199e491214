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
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/thestormforge/vizier-go/vizierapi"
	"go.uber.org/zap"
)

// VizierClient is the high level client for a single owner's studies. Concurrent use is safe when the
// underlying API is safe for concurrent use.
type VizierClient struct {
	owner string
	api   API
	log   logr.Logger
	sleep func(context.Context, time.Duration) error
}

// Option customizes a new client
type Option func(*VizierClient)

// WithLogger sets the logger used to report operation progress
func WithLogger(log logr.Logger) Option {
	return func(c *VizierClient) { c.log = log }
}

// NewVizierClient returns a new client for the studies of the specified owner
func NewVizierClient(owner string, api API, opts ...Option) *VizierClient {
	c := &VizierClient{
		owner: owner,
		api:   api,
		log:   zapr.NewLogger(zap.NewNop()),
		sleep: sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewVizierClientForConfig returns a new client using the server, owner and authorization of the supplied
// configuration; the supplied context is only used for authentication requests
func NewVizierClientForConfig(ctx context.Context, cfg vizierapi.Config, transport http.RoundTripper, opts ...Option) (*VizierClient, error) {
	owner, err := cfg.Owner()
	if err != nil {
		return nil, err
	}

	client, err := vizierapi.NewClientForConfig(ctx, cfg, transport)
	if err != nil {
		return nil, err
	}

	return NewVizierClient(owner, NewAPI(client), opts...), nil
}

// Owner returns the owner whose studies this client accesses
func (c *VizierClient) Owner() string {
	return c.owner
}

// StudyName returns the name of a study belonging to this client's owner
func (c *VizierClient) StudyName(study string) StudyName {
	return NewStudyName(c.owner, study)
}

// TrialName returns the name of a trial belonging to this client's owner
func (c *VizierClient) TrialName(study, trial string) TrialName {
	return NewTrialName(c.owner, study, trial)
}

// TrialNameFromStudy returns the name of a trial in the supplied study
func (c *VizierClient) TrialNameFromStudy(study StudyName, trial string) TrialName {
	return TrialNameFromStudy(study, trial)
}

// NewCreateStudyRequest returns a builder for creating a study belonging to this client's owner
func (c *VizierClient) NewCreateStudyRequest() CreateStudyRequestBuilder {
	return NewCreateStudyRequestBuilder(c.owner)
}

// NewListStudiesRequest returns a builder for listing the studies of this client's owner
func (c *VizierClient) NewListStudiesRequest() ListStudiesRequestBuilder {
	return NewListStudiesRequestBuilder(c.owner)
}

// NewSuggestTrialsRequest returns a request for new trials of a study
func (c *VizierClient) NewSuggestTrialsRequest(study StudyName, suggestionCount int32, clientID string) SuggestTrialsRequest {
	return NewSuggestTrialsRequestBuilder(study, suggestionCount, clientID).Build()
}

// CreateStudy creates a new study, failing without a call if the request cannot be built
func (c *VizierClient) CreateStudy(ctx context.Context, b CreateStudyRequestBuilder) (Study, error) {
	req, err := b.Build()
	if err != nil {
		return Study{}, err
	}
	return c.api.CreateStudy(ctx, req)
}

// GetStudy fetches a study
func (c *VizierClient) GetStudy(ctx context.Context, name StudyName) (Study, error) {
	return c.api.GetStudy(ctx, NewGetStudyRequestBuilder(name).Build())
}

// ListStudies fetches a single page of this client's studies
func (c *VizierClient) ListStudies(ctx context.Context, pageSize int32, pageToken string) (ListStudiesResponse, error) {
	return c.api.ListStudies(ctx, c.NewListStudiesRequest().WithPageSize(pageSize).WithPageToken(pageToken).Build())
}

// ListAllStudies fetches every page of this client's studies
func (c *VizierClient) ListAllStudies(ctx context.Context, pageSize int32) ([]Study, error) {
	var studies []Study
	pageToken := ""
	for {
		lst, err := c.ListStudies(ctx, pageSize, pageToken)
		if err != nil {
			return nil, err
		}
		studies = append(studies, lst.Studies...)

		if lst.NextPageToken == "" {
			return studies, nil
		}
		pageToken = lst.NextPageToken
	}
}

// DeleteStudy deletes a study
func (c *VizierClient) DeleteStudy(ctx context.Context, name StudyName) error {
	return c.api.DeleteStudy(ctx, NewDeleteStudyRequestBuilder(name).Build())
}

// GetTrial fetches a trial
func (c *VizierClient) GetTrial(ctx context.Context, name TrialName) (Trial, error) {
	return c.api.GetTrial(ctx, NewGetTrialRequestBuilder(name).Build())
}

// ListTrials fetches a single page of the trials of a study
func (c *VizierClient) ListTrials(ctx context.Context, study StudyName, pageSize int32, pageToken string) (ListTrialsResponse, error) {
	return c.api.ListTrials(ctx, NewListTrialsRequestBuilder(study).WithPageSize(pageSize).WithPageToken(pageToken).Build())
}

// ListAllTrials fetches every page of the trials of a study
func (c *VizierClient) ListAllTrials(ctx context.Context, study StudyName, pageSize int32) ([]Trial, error) {
	var trials []Trial
	pageToken := ""
	for {
		lst, err := c.ListTrials(ctx, study, pageSize, pageToken)
		if err != nil {
			return nil, err
		}
		trials = append(trials, lst.Trials...)

		if lst.NextPageToken == "" {
			return trials, nil
		}
		pageToken = lst.NextPageToken
	}
}

// CreateTrial adds a user provided trial to a study
func (c *VizierClient) CreateTrial(ctx context.Context, study StudyName, trial Trial) (Trial, error) {
	return c.api.CreateTrial(ctx, NewCreateTrialRequestBuilder(study, trial).Build())
}

// DeleteTrial deletes a trial
func (c *VizierClient) DeleteTrial(ctx context.Context, name TrialName) error {
	return c.api.DeleteTrial(ctx, NewDeleteTrialRequestBuilder(name).Build())
}

// AddTrialMeasurement reports an intermediate measurement of a trial
func (c *VizierClient) AddTrialMeasurement(ctx context.Context, name TrialName, measurement Measurement) (Trial, error) {
	return c.api.AddTrialMeasurement(ctx, NewAddTrialMeasurementRequestBuilder(name, measurement).Build())
}

// CompleteTrial completes a trial with either a final measurement or the reason it is infeasible
func (c *VizierClient) CompleteTrial(ctx context.Context, name TrialName, outcome FinalMeasurementOrReason) (Trial, error) {
	return c.api.CompleteTrial(ctx, NewCompleteTrialRequestBuilder(name, outcome).Build())
}

// StopTrial stops a trial
func (c *VizierClient) StopTrial(ctx context.Context, name TrialName) (Trial, error) {
	return c.api.StopTrial(ctx, NewStopTrialRequestBuilder(name).Build())
}

// CheckTrialEarlyStoppingState starts an operation that determines if a trial should stop
func (c *VizierClient) CheckTrialEarlyStoppingState(ctx context.Context, name TrialName) (Operation, error) {
	return c.api.CheckTrialEarlyStoppingState(ctx, NewCheckTrialEarlyStoppingStateRequestBuilder(name).Build())
}

// ShouldTrialStop checks if a trial should stop, waiting for the check to complete using up to `retries` retries
func (c *VizierClient) ShouldTrialStop(ctx context.Context, name TrialName, retries int) (bool, error) {
	op, err := c.CheckTrialEarlyStoppingState(ctx, name)
	if err != nil {
		return false, err
	}

	result, err := c.WaitForOperation(ctx, retries, op)
	if err != nil {
		return false, err
	}

	resp, err := DecodeOperationResult[CheckTrialEarlyStoppingStateResponse](result)
	if err != nil {
		return false, err
	}
	return resp.ShouldStop, nil
}

// ListOptimalTrials fetches the Pareto-optimal trials of a study
func (c *VizierClient) ListOptimalTrials(ctx context.Context, study StudyName) (ListOptimalTrialsResponse, error) {
	return c.api.ListOptimalTrials(ctx, NewListOptimalTrialsRequestBuilder(study).Build())
}

// SuggestTrials submits the request exactly once and polls the resulting operation until the suggestions are ready
func (c *VizierClient) SuggestTrials(ctx context.Context, req SuggestTrialsRequest) (*SuggestTrialsResponse, error) {
	op, err := c.api.SuggestTrials(ctx, req)
	if err != nil {
		return nil, err
	}
	c.log.Info("Suggesting trials", "study", req.Parent, "operation", op.Name, "count", req.SuggestionCount)

	result, err := c.pollOperation(ctx, op.Name)
	if err != nil {
		return nil, err
	}

	return DecodeOperationResult[SuggestTrialsResponse](result)
}
