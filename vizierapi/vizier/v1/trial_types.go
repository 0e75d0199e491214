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

import "time"

// TrialState describes the lifecycle of a trial
type TrialState string

const (
	TrialStateUnspecified TrialState = "STATE_UNSPECIFIED"
	TrialStateRequested   TrialState = "REQUESTED"
	TrialStateActive      TrialState = "ACTIVE"
	TrialStateStopping    TrialState = "STOPPING"
	TrialStateSucceeded   TrialState = "SUCCEEDED"
	TrialStateInfeasible  TrialState = "INFEASIBLE"
)

// Trial is a single evaluation of a point in the search space of a study
type Trial struct {
	// The resource name of the trial, `owners/{owner}/studies/{study}/trials/{trial}`; assigned by the server.
	Name string `json:"name,omitempty"`
	// The identifier of the trial within its study.
	ID string `json:"id,omitempty"`
	// The current state of the trial.
	State TrialState `json:"state,omitempty"`
	// The parameter assignments of the trial.
	Parameters []TrialParameter `json:"parameters,omitempty"`
	// The final measurement of a completed trial.
	FinalMeasurement *Measurement `json:"finalMeasurement,omitempty"`
	// The intermediate measurements reported so far.
	Measurements []Measurement `json:"measurements,omitempty"`
	// The time the trial was started.
	StartTime *time.Time `json:"startTime,omitempty"`
	// The time the trial was completed.
	EndTime *time.Time `json:"endTime,omitempty"`
	// The identifier of the client the trial was suggested to.
	ClientID string `json:"clientId,omitempty"`
	// The reason the trial is infeasible, if it is.
	InfeasibleReason string `json:"infeasibleReason,omitempty"`
}

// MessageName returns the fully qualified protocol message name.
func (*Trial) MessageName() string { return protoPackage + ".Trial" }

// TrialParameter is the value assigned to a single parameter
type TrialParameter struct {
	ParameterID string         `json:"parameterId"`
	Value       ParameterValue `json:"value"`
}

// Measurement is a set of metric values observed at some point during a trial
type Measurement struct {
	// The time elapsed since the trial started.
	ElapsedDuration *Duration `json:"elapsedDuration,omitempty"`
	// The number of training steps performed.
	StepCount Int64 `json:"stepCount,omitempty"`
	// The observed metric values.
	Metrics []Metric `json:"metrics,omitempty"`
}

// Metric is a single observed metric value
type Metric struct {
	MetricID string  `json:"metricId"`
	Value    float64 `json:"value"`
}

// GetTrialRequest fetches a single trial
type GetTrialRequest struct {
	Name string `json:"name"`
}

// ListTrialsRequest fetches a page of the trials of a study
type ListTrialsRequest struct {
	// The study whose trials are listed.
	Parent string `json:"parent"`
	// The token of the page to fetch, empty for the first page.
	PageToken string `json:"pageToken,omitempty"`
	// The maximum number of trials to return, zero for the server default.
	PageSize int32 `json:"pageSize,omitempty"`
}

// ListTrialsResponse is a page of trials
type ListTrialsResponse struct {
	Trials []Trial `json:"trials,omitempty"`
	// The token of the next page, empty if this is the last page.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// CreateTrialRequest adds a user provided trial to a study
type CreateTrialRequest struct {
	Parent string `json:"parent"`
	Trial  Trial  `json:"trial"`
}

// DeleteTrialRequest deletes a trial
type DeleteTrialRequest struct {
	Name string `json:"name"`
}

// SuggestTrialsRequest asks the service for new trials to evaluate
type SuggestTrialsRequest struct {
	// The study to suggest trials for.
	Parent string `json:"parent"`
	// The number of trials requested.
	SuggestionCount int32 `json:"suggestionCount"`
	// The identifier of the requesting client, used to resume trials after a client restart.
	ClientID string `json:"clientId"`
}

// SuggestTrialsResponse is the result of a completed suggestion operation
type SuggestTrialsResponse struct {
	Trials     []Trial    `json:"trials,omitempty"`
	StudyState StudyState `json:"studyState,omitempty"`
	StartTime  *time.Time `json:"startTime,omitempty"`
}

// MessageName returns the fully qualified protocol message name.
func (*SuggestTrialsResponse) MessageName() string { return protoPackage + ".SuggestTrialsResponse" }

// AddTrialMeasurementRequest reports an intermediate measurement of a trial
type AddTrialMeasurementRequest struct {
	TrialName   string      `json:"trialName"`
	Measurement Measurement `json:"measurement"`
}

// CompleteTrialRequest marks a trial as complete
type CompleteTrialRequest struct {
	Name string `json:"name"`
	// The final measurement, if the trial was feasible.
	FinalMeasurement *Measurement `json:"finalMeasurement,omitempty"`
	// True if the trial could not be evaluated.
	TrialInfeasible bool `json:"trialInfeasible,omitempty"`
	// The reason the trial could not be evaluated.
	InfeasibleReason string `json:"infeasibleReason,omitempty"`
}

// CheckTrialEarlyStoppingStateRequest asks the service if a trial should be stopped
type CheckTrialEarlyStoppingStateRequest struct {
	TrialName string `json:"trialName"`
}

// CheckTrialEarlyStoppingStateResponse is the result of a completed early stopping operation
type CheckTrialEarlyStoppingStateResponse struct {
	ShouldStop bool `json:"shouldStop"`
}

// MessageName returns the fully qualified protocol message name.
func (*CheckTrialEarlyStoppingStateResponse) MessageName() string {
	return protoPackage + ".CheckTrialEarlyStoppingStateResponse"
}

// StopTrialRequest stops a running trial
type StopTrialRequest struct {
	Name string `json:"name"`
}

// ListOptimalTrialsRequest fetches a page of the Pareto-optimal trials of a study
type ListOptimalTrialsRequest struct {
	Parent    string `json:"parent"`
	PageToken string `json:"pageToken,omitempty"`
	PageSize  int32  `json:"pageSize,omitempty"`
}

// ListOptimalTrialsResponse is a page of Pareto-optimal trials
type ListOptimalTrialsResponse struct {
	OptimalTrials []Trial `json:"optimalTrials,omitempty"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}
