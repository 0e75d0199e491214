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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thestormforge/vizier-go/vizierapi"
	"google.golang.org/grpc/codes"
)

const endpointVersion = "/v1/"

// NewAPI returns a new API implementation for the specified client
func NewAPI(c vizierapi.Client) API {
	return &httpAPI{client: c}
}

type httpAPI struct {
	client vizierapi.Client
}

var _ API = &httpAPI{}

func (h *httpAPI) CreateStudy(ctx context.Context, req CreateStudyRequest) (Study, error) {
	s := Study{}
	err := h.do(ctx, "CreateStudy", http.MethodPost, req.Parent+"/studies", nil, req.Study, &s)
	return s, err
}

func (h *httpAPI) GetStudy(ctx context.Context, req GetStudyRequest) (Study, error) {
	s := Study{}
	err := h.do(ctx, "GetStudy", http.MethodGet, req.Name, nil, nil, &s)
	return s, err
}

func (h *httpAPI) ListStudies(ctx context.Context, req ListStudiesRequest) (ListStudiesResponse, error) {
	lst := ListStudiesResponse{}
	err := h.do(ctx, "ListStudies", http.MethodGet, req.Parent+"/studies", pageQuery(req.PageSize, req.PageToken), nil, &lst)
	return lst, err
}

func (h *httpAPI) DeleteStudy(ctx context.Context, req DeleteStudyRequest) error {
	return h.do(ctx, "DeleteStudy", http.MethodDelete, req.Name, nil, nil, nil)
}

func (h *httpAPI) GetTrial(ctx context.Context, req GetTrialRequest) (Trial, error) {
	t := Trial{}
	err := h.do(ctx, "GetTrial", http.MethodGet, req.Name, nil, nil, &t)
	return t, err
}

func (h *httpAPI) ListTrials(ctx context.Context, req ListTrialsRequest) (ListTrialsResponse, error) {
	lst := ListTrialsResponse{}
	err := h.do(ctx, "ListTrials", http.MethodGet, req.Parent+"/trials", pageQuery(req.PageSize, req.PageToken), nil, &lst)
	return lst, err
}

func (h *httpAPI) CreateTrial(ctx context.Context, req CreateTrialRequest) (Trial, error) {
	t := Trial{}
	err := h.do(ctx, "CreateTrial", http.MethodPost, req.Parent+"/trials", nil, req.Trial, &t)
	return t, err
}

func (h *httpAPI) DeleteTrial(ctx context.Context, req DeleteTrialRequest) error {
	return h.do(ctx, "DeleteTrial", http.MethodDelete, req.Name, nil, nil, nil)
}

func (h *httpAPI) AddTrialMeasurement(ctx context.Context, req AddTrialMeasurementRequest) (Trial, error) {
	t := Trial{}
	err := h.do(ctx, "AddTrialMeasurement", http.MethodPost, req.TrialName+":addTrialMeasurement", nil, req, &t)
	return t, err
}

func (h *httpAPI) CompleteTrial(ctx context.Context, req CompleteTrialRequest) (Trial, error) {
	t := Trial{}
	err := h.do(ctx, "CompleteTrial", http.MethodPost, req.Name+":complete", nil, req, &t)
	return t, err
}

func (h *httpAPI) CheckTrialEarlyStoppingState(ctx context.Context, req CheckTrialEarlyStoppingStateRequest) (Operation, error) {
	op := Operation{}
	err := h.do(ctx, "CheckTrialEarlyStoppingState", http.MethodPost, req.TrialName+":checkTrialEarlyStoppingState", nil, req, &op)
	return op, err
}

func (h *httpAPI) StopTrial(ctx context.Context, req StopTrialRequest) (Trial, error) {
	t := Trial{}
	err := h.do(ctx, "StopTrial", http.MethodPost, req.Name+":stop", nil, req, &t)
	return t, err
}

func (h *httpAPI) ListOptimalTrials(ctx context.Context, req ListOptimalTrialsRequest) (ListOptimalTrialsResponse, error) {
	lst := ListOptimalTrialsResponse{}
	err := h.do(ctx, "ListOptimalTrials", http.MethodPost, req.Parent+"/trials:listOptimalTrials", nil, req, &lst)
	return lst, err
}

func (h *httpAPI) SuggestTrials(ctx context.Context, req SuggestTrialsRequest) (Operation, error) {
	op := Operation{}
	err := h.do(ctx, "SuggestTrials", http.MethodPost, req.Parent+"/trials:suggest", nil, req, &op)
	return op, err
}

func (h *httpAPI) GetOperation(ctx context.Context, req GetOperationRequest) (Operation, error) {
	op := Operation{}
	err := h.do(ctx, "GetOperation", http.MethodGet, req.Name, nil, nil, &op)
	return op, err
}

// do performs a single call: the optional body is sent as JSON and a successful response is decoded into the
// optional output value
func (h *httpAPI) do(ctx context.Context, operation, method, name string, query url.Values, body, out interface{}) error {
	u := h.client.URL(endpointVersion + name)
	u.RawQuery = query.Encode()

	req, err := httpNewJSONRequest(method, u.String(), body)
	if err != nil {
		return vizierapi.NewError(vizierapi.ErrDecoding, err, "unable to encode %s request: %v", operation, err)
	}

	resp, data, err := h.client.Do(ctx, req)
	if err != nil {
		observeRequest(operation, vizierapi.StatusCode(err))
		return err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		observeRequest(operation, codes.OK)
		if out == nil || len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			e := vizierapi.NewError(vizierapi.ErrDecoding, err, "unable to decode %s response: %v", operation, err)
			e.Location = u.String()
			return e
		}
		return nil
	default:
		err := newError(resp, data)
		observeRequest(operation, err.Code)
		return err
	}
}

// pageQuery returns the query parameters for a paged list, omitting defaults
func pageQuery(pageSize int32, pageToken string) url.Values {
	q := url.Values{}
	if pageSize > 0 {
		q.Set("pageSize", strconv.FormatInt(int64(pageSize), 10))
	}
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	return q
}

// httpNewJSONRequest returns a new HTTP request with an optional JSON payload
func httpNewJSONRequest(method, u string, body interface{}) (*http.Request, error) {
	if body == nil {
		return http.NewRequest(method, u, nil)
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, u, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// errorBody accepts both the bare status and the status wrapped in an "error" member
type errorBody struct {
	Status
	Error *struct {
		Message string     `json:"message"`
		Status  codes.Code `json:"status"`
	} `json:"error,omitempty"`
}

// newError returns a new status error for a non-successful response, using the server supplied status when
// one is present
func newError(resp *http.Response, body []byte) *vizierapi.Error {
	err := &vizierapi.Error{
		Type:    vizierapi.ErrStatus,
		Code:    vizierapi.CodeFromHTTPStatus(resp.StatusCode),
		Message: http.StatusText(resp.StatusCode),
	}
	if resp.Request != nil && resp.Request.URL != nil {
		err.Location = resp.Request.URL.String()
	}

	eb := errorBody{}
	if len(body) > 0 && json.Unmarshal(body, &eb) == nil {
		switch {
		case eb.Error != nil:
			if eb.Error.Status != codes.OK {
				err.Code = eb.Error.Status
			}
			if eb.Error.Message != "" {
				err.Message = eb.Error.Message
			}
		default:
			if eb.Code != codes.OK {
				err.Code = eb.Code
			}
			if eb.Message != "" {
				err.Message = eb.Message
			}
		}
	}

	if err.Code == codes.OK {
		err.Code = codes.Unknown
	}
	return err
}
