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

// GetTrialRequestBuilder builds a GetTrialRequest
type GetTrialRequestBuilder struct {
	name TrialName
}

// NewGetTrialRequestBuilder returns a builder for fetching the named trial
func NewGetTrialRequestBuilder(name TrialName) GetTrialRequestBuilder {
	return GetTrialRequestBuilder{name: name}
}

// Build returns the request
func (b GetTrialRequestBuilder) Build() GetTrialRequest {
	return GetTrialRequest{Name: b.name.String()}
}

// ListTrialsRequestBuilder builds a ListTrialsRequest
type ListTrialsRequestBuilder struct {
	study     StudyName
	pageToken string
	pageSize  int32
}

// NewListTrialsRequestBuilder returns a builder for listing the trials of a study
func NewListTrialsRequestBuilder(study StudyName) ListTrialsRequestBuilder {
	return ListTrialsRequestBuilder{study: study}
}

// WithPageToken sets the token of the page to fetch, the first page is fetched if it is not set
func (b ListTrialsRequestBuilder) WithPageToken(pageToken string) ListTrialsRequestBuilder {
	b.pageToken = pageToken
	return b
}

// WithPageSize sets the maximum number of trials to return, the server default is used if it is not set
func (b ListTrialsRequestBuilder) WithPageSize(pageSize int32) ListTrialsRequestBuilder {
	b.pageSize = pageSize
	return b
}

// Build returns the request
func (b ListTrialsRequestBuilder) Build() ListTrialsRequest {
	return ListTrialsRequest{
		Parent:    b.study.String(),
		PageToken: b.pageToken,
		PageSize:  b.pageSize,
	}
}

// CreateTrialRequestBuilder builds a CreateTrialRequest
type CreateTrialRequestBuilder struct {
	study StudyName
	trial Trial
}

// NewCreateTrialRequestBuilder returns a builder for adding a trial to a study
func NewCreateTrialRequestBuilder(study StudyName, trial Trial) CreateTrialRequestBuilder {
	return CreateTrialRequestBuilder{study: study, trial: *trial.DeepCopy()}
}

// Build returns the request
func (b CreateTrialRequestBuilder) Build() CreateTrialRequest {
	return CreateTrialRequest{
		Parent: b.study.String(),
		Trial:  *b.trial.DeepCopy(),
	}
}

// DeleteTrialRequestBuilder builds a DeleteTrialRequest
type DeleteTrialRequestBuilder struct {
	name TrialName
}

// NewDeleteTrialRequestBuilder returns a builder for deleting the named trial
func NewDeleteTrialRequestBuilder(name TrialName) DeleteTrialRequestBuilder {
	return DeleteTrialRequestBuilder{name: name}
}

// Build returns the request
func (b DeleteTrialRequestBuilder) Build() DeleteTrialRequest {
	return DeleteTrialRequest{Name: b.name.String()}
}

// SuggestTrialsRequestBuilder builds a SuggestTrialsRequest
type SuggestTrialsRequestBuilder struct {
	study           StudyName
	suggestionCount int32
	clientID        string
}

// NewSuggestTrialsRequestBuilder returns a builder for requesting new trials of a study
func NewSuggestTrialsRequestBuilder(study StudyName, suggestionCount int32, clientID string) SuggestTrialsRequestBuilder {
	return SuggestTrialsRequestBuilder{study: study, suggestionCount: suggestionCount, clientID: clientID}
}

// Build returns the request
func (b SuggestTrialsRequestBuilder) Build() SuggestTrialsRequest {
	return SuggestTrialsRequest{
		Parent:          b.study.String(),
		SuggestionCount: b.suggestionCount,
		ClientID:        b.clientID,
	}
}

// AddTrialMeasurementRequestBuilder builds an AddTrialMeasurementRequest
type AddTrialMeasurementRequestBuilder struct {
	name        TrialName
	measurement Measurement
}

// NewAddTrialMeasurementRequestBuilder returns a builder for reporting an intermediate measurement of a trial
func NewAddTrialMeasurementRequestBuilder(name TrialName, measurement Measurement) AddTrialMeasurementRequestBuilder {
	return AddTrialMeasurementRequestBuilder{name: name, measurement: *measurement.DeepCopy()}
}

// Build returns the request
func (b AddTrialMeasurementRequestBuilder) Build() AddTrialMeasurementRequest {
	return AddTrialMeasurementRequest{
		TrialName:   b.name.String(),
		Measurement: *b.measurement.DeepCopy(),
	}
}

// FinalMeasurementOrReason is the outcome of a trial: either a final measurement or the reason it is infeasible
type FinalMeasurementOrReason interface {
	applyTo(*CompleteTrialRequest)
}

type finalMeasurement struct{ measurement Measurement }

func (f finalMeasurement) applyTo(req *CompleteTrialRequest) {
	req.FinalMeasurement = f.measurement.DeepCopy()
}

type infeasibleReason struct{ reason string }

func (r infeasibleReason) applyTo(req *CompleteTrialRequest) {
	req.TrialInfeasible = true
	req.InfeasibleReason = r.reason
}

// FinalMeasurement completes a trial with the supplied measurement
func FinalMeasurement(m Measurement) FinalMeasurementOrReason {
	return finalMeasurement{measurement: *m.DeepCopy()}
}

// InfeasibleReason completes a trial as infeasible
func InfeasibleReason(reason string) FinalMeasurementOrReason {
	return infeasibleReason{reason: reason}
}

// CompleteTrialRequestBuilder builds a CompleteTrialRequest
type CompleteTrialRequestBuilder struct {
	name    TrialName
	outcome FinalMeasurementOrReason
}

// NewCompleteTrialRequestBuilder returns a builder for completing the named trial; a nil outcome completes the
// trial using its existing measurements
func NewCompleteTrialRequestBuilder(name TrialName, outcome FinalMeasurementOrReason) CompleteTrialRequestBuilder {
	return CompleteTrialRequestBuilder{name: name, outcome: outcome}
}

// Build returns the request
func (b CompleteTrialRequestBuilder) Build() CompleteTrialRequest {
	req := CompleteTrialRequest{Name: b.name.String()}
	if b.outcome != nil {
		b.outcome.applyTo(&req)
	}
	return req
}

// StopTrialRequestBuilder builds a StopTrialRequest
type StopTrialRequestBuilder struct {
	name TrialName
}

// NewStopTrialRequestBuilder returns a builder for stopping the named trial
func NewStopTrialRequestBuilder(name TrialName) StopTrialRequestBuilder {
	return StopTrialRequestBuilder{name: name}
}

// Build returns the request
func (b StopTrialRequestBuilder) Build() StopTrialRequest {
	return StopTrialRequest{Name: b.name.String()}
}

// CheckTrialEarlyStoppingStateRequestBuilder builds a CheckTrialEarlyStoppingStateRequest
type CheckTrialEarlyStoppingStateRequestBuilder struct {
	name TrialName
}

// NewCheckTrialEarlyStoppingStateRequestBuilder returns a builder for checking if the named trial should stop
func NewCheckTrialEarlyStoppingStateRequestBuilder(name TrialName) CheckTrialEarlyStoppingStateRequestBuilder {
	return CheckTrialEarlyStoppingStateRequestBuilder{name: name}
}

// Build returns the request
func (b CheckTrialEarlyStoppingStateRequestBuilder) Build() CheckTrialEarlyStoppingStateRequest {
	return CheckTrialEarlyStoppingStateRequest{TrialName: b.name.String()}
}

// ListOptimalTrialsRequestBuilder builds a ListOptimalTrialsRequest
type ListOptimalTrialsRequestBuilder struct {
	study     StudyName
	pageToken string
	pageSize  int32
}

// NewListOptimalTrialsRequestBuilder returns a builder for listing the Pareto-optimal trials of a study
func NewListOptimalTrialsRequestBuilder(study StudyName) ListOptimalTrialsRequestBuilder {
	return ListOptimalTrialsRequestBuilder{study: study}
}

// WithPageToken sets the token of the page to fetch, the first page is fetched if it is not set
func (b ListOptimalTrialsRequestBuilder) WithPageToken(pageToken string) ListOptimalTrialsRequestBuilder {
	b.pageToken = pageToken
	return b
}

// WithPageSize sets the maximum number of trials to return, the server default is used if it is not set
func (b ListOptimalTrialsRequestBuilder) WithPageSize(pageSize int32) ListOptimalTrialsRequestBuilder {
	b.pageSize = pageSize
	return b
}

// Build returns the request
func (b ListOptimalTrialsRequestBuilder) Build() ListOptimalTrialsRequest {
	return ListOptimalTrialsRequest{
		Parent:    b.study.String(),
		PageToken: b.pageToken,
		PageSize:  b.pageSize,
	}
}
