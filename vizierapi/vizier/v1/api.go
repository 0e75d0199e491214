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

// Package v1 is a client for version 1 of the Vizier black-box optimization service.
package v1

import (
	"context"
)

// API is the remote interface of the Vizier service
type API interface {
	// CreateStudy creates a new study
	CreateStudy(context.Context, CreateStudyRequest) (Study, error)
	// GetStudy fetches a study by name
	GetStudy(context.Context, GetStudyRequest) (Study, error)
	// ListStudies fetches a page of studies
	ListStudies(context.Context, ListStudiesRequest) (ListStudiesResponse, error)
	// DeleteStudy deletes a study
	DeleteStudy(context.Context, DeleteStudyRequest) error
	// GetTrial fetches a trial by name
	GetTrial(context.Context, GetTrialRequest) (Trial, error)
	// ListTrials fetches a page of trials
	ListTrials(context.Context, ListTrialsRequest) (ListTrialsResponse, error)
	// CreateTrial adds a user provided trial to a study
	CreateTrial(context.Context, CreateTrialRequest) (Trial, error)
	// DeleteTrial deletes a trial
	DeleteTrial(context.Context, DeleteTrialRequest) error
	// AddTrialMeasurement reports an intermediate measurement
	AddTrialMeasurement(context.Context, AddTrialMeasurementRequest) (Trial, error)
	// CompleteTrial completes a trial
	CompleteTrial(context.Context, CompleteTrialRequest) (Trial, error)
	// CheckTrialEarlyStoppingState starts an operation that determines if a trial should stop
	CheckTrialEarlyStoppingState(context.Context, CheckTrialEarlyStoppingStateRequest) (Operation, error)
	// StopTrial stops a trial
	StopTrial(context.Context, StopTrialRequest) (Trial, error)
	// ListOptimalTrials fetches a page of the Pareto-optimal trials
	ListOptimalTrials(context.Context, ListOptimalTrialsRequest) (ListOptimalTrialsResponse, error)
	// SuggestTrials starts an operation that suggests new trials
	SuggestTrials(context.Context, SuggestTrialsRequest) (Operation, error)
	// GetOperation fetches the current state of an operation
	GetOperation(context.Context, GetOperationRequest) (Operation, error)
}
