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

// Package fake provides an in-memory implementation of the Vizier API for testing.
package fake

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/thestormforge/vizier-go/vizierapi"
	v1 "github.com/thestormforge/vizier-go/vizierapi/vizier/v1"
	"google.golang.org/grpc/codes"
)

var _ v1.API = &FakeAPI{}

// Step is a single scripted response to a GetOperation call
type Step struct {
	Operation v1.Operation
	Err       error
}

// NotDone is a step returning an operation that is still running
func NotDone() Step {
	return Step{}
}

// Done is a step returning a successfully completed operation with the supplied payload
func Done(msg v1.Message) Step {
	payload, err := v1.NewAny(msg)
	if err != nil {
		panic(err)
	}
	return Step{Operation: v1.Operation{Done: true, Response: payload}}
}

// Failed is a step returning a completed operation with a failure status
func Failed(code codes.Code, message string) Step {
	return Step{Operation: v1.Operation{Done: true, Error: &v1.Status{Code: code, Message: message}}}
}

// Error is a step where the call itself fails
func Error(err error) Step {
	return Step{Err: err}
}

// FakeAPI is an in-memory Vizier service. Long-running operations started by the fake complete immediately
// unless a script was registered for the operation name; operation names are assigned sequentially as
// "operations/1", "operations/2", etc.
type FakeAPI struct {
	// PageSize is used when a list request does not specify a page size, zero returns everything
	PageSize int

	mu         sync.Mutex
	studies    []v1.Study
	trials     map[string][]v1.Trial
	operations map[string]v1.Operation
	scripts    map[string][]Step
	calls      map[string]int
	lastID     int
	lastOp     int
}

// NewFakeAPI returns a new empty fake
func NewFakeAPI() *FakeAPI {
	return &FakeAPI{
		trials:     make(map[string][]v1.Trial),
		operations: make(map[string]v1.Operation),
		scripts:    make(map[string][]Step),
		calls:      make(map[string]int),
	}
}

// ScriptOperation registers the responses returned by GetOperation for the named operation, one per call;
// once the steps are exhausted the operation's actual state is returned
func (f *FakeAPI) ScriptOperation(name string, steps ...Step) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[name] = append(f.scripts[name], steps...)
}

// Calls returns the number of times the named method was invoked
func (f *FakeAPI) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *FakeAPI) CreateStudy(ctx context.Context, req v1.CreateStudyRequest) (v1.Study, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["CreateStudy"]++

	id := req.Study.DisplayName
	if id == "" {
		id = f.nextID()
	}

	s := req.Study
	s.Name = req.Parent + "/studies/" + id
	if f.findStudy(s.Name) >= 0 {
		return v1.Study{}, statusError(codes.AlreadyExists, "study %q already exists", s.Name)
	}

	now := time.Now().UTC()
	s.State = v1.StudyStateActive
	s.CreateTime = &now
	f.studies = append(f.studies, s)
	return s, nil
}

func (f *FakeAPI) GetStudy(ctx context.Context, req v1.GetStudyRequest) (v1.Study, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetStudy"]++

	i := f.findStudy(req.Name)
	if i < 0 {
		return v1.Study{}, statusError(codes.NotFound, "study %q not found", req.Name)
	}
	return f.studies[i], nil
}

func (f *FakeAPI) ListStudies(ctx context.Context, req v1.ListStudiesRequest) (v1.ListStudiesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["ListStudies"]++

	prefix := req.Parent + "/studies/"
	var studies []v1.Study
	for i := range f.studies {
		if strings.HasPrefix(f.studies[i].Name, prefix) {
			studies = append(studies, f.studies[i])
		}
	}

	start, end, next, err := f.page(len(studies), req.PageSize, req.PageToken)
	if err != nil {
		return v1.ListStudiesResponse{}, err
	}
	return v1.ListStudiesResponse{Studies: studies[start:end], NextPageToken: next}, nil
}

func (f *FakeAPI) DeleteStudy(ctx context.Context, req v1.DeleteStudyRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["DeleteStudy"]++

	i := f.findStudy(req.Name)
	if i < 0 {
		return statusError(codes.NotFound, "study %q not found", req.Name)
	}
	f.studies = append(f.studies[:i], f.studies[i+1:]...)
	delete(f.trials, req.Name)
	return nil
}

func (f *FakeAPI) GetTrial(ctx context.Context, req v1.GetTrialRequest) (v1.Trial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetTrial"]++

	t, err := f.trial(req.Name)
	if err != nil {
		return v1.Trial{}, err
	}
	return *t, nil
}

func (f *FakeAPI) ListTrials(ctx context.Context, req v1.ListTrialsRequest) (v1.ListTrialsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["ListTrials"]++

	if f.findStudy(req.Parent) < 0 {
		return v1.ListTrialsResponse{}, statusError(codes.NotFound, "study %q not found", req.Parent)
	}

	trials := f.trials[req.Parent]
	start, end, next, err := f.page(len(trials), req.PageSize, req.PageToken)
	if err != nil {
		return v1.ListTrialsResponse{}, err
	}
	return v1.ListTrialsResponse{Trials: append([]v1.Trial(nil), trials[start:end]...), NextPageToken: next}, nil
}

func (f *FakeAPI) CreateTrial(ctx context.Context, req v1.CreateTrialRequest) (v1.Trial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["CreateTrial"]++

	if f.findStudy(req.Parent) < 0 {
		return v1.Trial{}, statusError(codes.NotFound, "study %q not found", req.Parent)
	}

	t := req.Trial
	if t.State == "" {
		t.State = v1.TrialStateRequested
	}
	return f.addTrial(req.Parent, t), nil
}

func (f *FakeAPI) DeleteTrial(ctx context.Context, req v1.DeleteTrialRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["DeleteTrial"]++

	study := v1.TrialNameOf(&v1.Trial{Name: req.Name}).Study().String()
	trials := f.trials[study]
	for i := range trials {
		if trials[i].Name == req.Name {
			f.trials[study] = append(trials[:i], trials[i+1:]...)
			return nil
		}
	}
	return statusError(codes.NotFound, "trial %q not found", req.Name)
}

func (f *FakeAPI) AddTrialMeasurement(ctx context.Context, req v1.AddTrialMeasurementRequest) (v1.Trial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["AddTrialMeasurement"]++

	t, err := f.trial(req.TrialName)
	if err != nil {
		return v1.Trial{}, err
	}
	t.Measurements = append(t.Measurements, req.Measurement)
	if t.State == v1.TrialStateRequested {
		t.State = v1.TrialStateActive
	}
	return *t, nil
}

func (f *FakeAPI) CompleteTrial(ctx context.Context, req v1.CompleteTrialRequest) (v1.Trial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["CompleteTrial"]++

	t, err := f.trial(req.Name)
	if err != nil {
		return v1.Trial{}, err
	}
	if t.State == v1.TrialStateSucceeded || t.State == v1.TrialStateInfeasible {
		return v1.Trial{}, statusError(codes.FailedPrecondition, "trial %q is already complete", req.Name)
	}

	now := time.Now().UTC()
	t.EndTime = &now
	switch {
	case req.TrialInfeasible:
		t.State = v1.TrialStateInfeasible
		t.InfeasibleReason = req.InfeasibleReason
	case req.FinalMeasurement != nil:
		t.State = v1.TrialStateSucceeded
		t.FinalMeasurement = req.FinalMeasurement
	default:
		t.State = v1.TrialStateSucceeded
		if n := len(t.Measurements); n > 0 {
			m := t.Measurements[n-1]
			t.FinalMeasurement = &m
		}
	}
	return *t, nil
}

func (f *FakeAPI) CheckTrialEarlyStoppingState(ctx context.Context, req v1.CheckTrialEarlyStoppingStateRequest) (v1.Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["CheckTrialEarlyStoppingState"]++

	t, err := f.trial(req.TrialName)
	if err != nil {
		return v1.Operation{}, err
	}
	return f.startOperation(&v1.CheckTrialEarlyStoppingStateResponse{ShouldStop: t.State == v1.TrialStateStopping})
}

func (f *FakeAPI) StopTrial(ctx context.Context, req v1.StopTrialRequest) (v1.Trial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["StopTrial"]++

	t, err := f.trial(req.Name)
	if err != nil {
		return v1.Trial{}, err
	}
	t.State = v1.TrialStateStopping
	return *t, nil
}

func (f *FakeAPI) ListOptimalTrials(ctx context.Context, req v1.ListOptimalTrialsRequest) (v1.ListOptimalTrialsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["ListOptimalTrials"]++

	if f.findStudy(req.Parent) < 0 {
		return v1.ListOptimalTrialsResponse{}, statusError(codes.NotFound, "study %q not found", req.Parent)
	}

	// Every succeeded trial is reported, the fake does not compute a Pareto frontier
	var optimal []v1.Trial
	for _, t := range f.trials[req.Parent] {
		if t.State == v1.TrialStateSucceeded {
			optimal = append(optimal, t)
		}
	}

	start, end, next, err := f.page(len(optimal), req.PageSize, req.PageToken)
	if err != nil {
		return v1.ListOptimalTrialsResponse{}, err
	}
	return v1.ListOptimalTrialsResponse{OptimalTrials: optimal[start:end], NextPageToken: next}, nil
}

func (f *FakeAPI) SuggestTrials(ctx context.Context, req v1.SuggestTrialsRequest) (v1.Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["SuggestTrials"]++

	if f.findStudy(req.Parent) < 0 {
		return v1.Operation{}, statusError(codes.NotFound, "study %q not found", req.Parent)
	}

	resp := &v1.SuggestTrialsResponse{StudyState: v1.StudyStateActive}
	for i := int32(0); i < req.SuggestionCount; i++ {
		resp.Trials = append(resp.Trials, f.addTrial(req.Parent, v1.Trial{
			State:    v1.TrialStateActive,
			ClientID: req.ClientID,
		}))
	}
	return f.startOperation(resp)
}

func (f *FakeAPI) GetOperation(ctx context.Context, req v1.GetOperationRequest) (v1.Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetOperation"]++

	if steps := f.scripts[req.Name]; len(steps) > 0 {
		f.scripts[req.Name] = steps[1:]
		if steps[0].Err != nil {
			return v1.Operation{}, steps[0].Err
		}
		op := steps[0].Operation
		op.Name = req.Name
		return op, nil
	}

	op, ok := f.operations[req.Name]
	if !ok {
		return v1.Operation{}, statusError(codes.NotFound, "operation %q not found", req.Name)
	}
	return op, nil
}

// startOperation records a completed operation and returns it in the running state
func (f *FakeAPI) startOperation(msg v1.Message) (v1.Operation, error) {
	payload, err := v1.NewAny(msg)
	if err != nil {
		return v1.Operation{}, statusError(codes.Internal, "%v", err)
	}

	f.lastOp++
	name := "operations/" + strconv.Itoa(f.lastOp)
	f.operations[name] = v1.Operation{Name: name, Done: true, Response: payload}
	return v1.Operation{Name: name}, nil
}

func (f *FakeAPI) addTrial(study string, t v1.Trial) v1.Trial {
	now := time.Now().UTC()
	t.ID = f.nextID()
	t.Name = v1.TrialNameFromStudy(v1.StudyNameOf(&v1.Study{Name: study}), t.ID).String()
	t.StartTime = &now
	f.trials[study] = append(f.trials[study], t)
	return t
}

func (f *FakeAPI) nextID() string {
	f.lastID++
	return strconv.Itoa(f.lastID)
}

func (f *FakeAPI) findStudy(name string) int {
	for i := range f.studies {
		if f.studies[i].Name == name {
			return i
		}
	}
	return -1
}

func (f *FakeAPI) trial(name string) (*v1.Trial, error) {
	study := v1.TrialNameOf(&v1.Trial{Name: name}).Study().String()
	trials := f.trials[study]
	for i := range trials {
		if trials[i].Name == name {
			return &trials[i], nil
		}
	}
	return nil, statusError(codes.NotFound, "trial %q not found", name)
}

// page returns the bounds of the requested page and the token of the next page
func (f *FakeAPI) page(total int, pageSize int32, pageToken string) (int, int, string, error) {
	start := 0
	if pageToken != "" {
		var err error
		if start, err = strconv.Atoi(pageToken); err != nil || start < 0 || start > total {
			return 0, 0, "", statusError(codes.InvalidArgument, "invalid page token %q", pageToken)
		}
	}

	size := int(pageSize)
	if size <= 0 {
		size = f.PageSize
	}

	end := total
	if size > 0 && start+size < total {
		end = start + size
	}

	next := ""
	if end < total {
		next = strconv.Itoa(end)
	}
	return start, end, next, nil
}

func statusError(code codes.Code, format string, args ...interface{}) error {
	err := vizierapi.NewError(vizierapi.ErrStatus, nil, format, args...)
	err.Code = code
	return err
}
