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
	"github.com/thestormforge/vizier-go/vizierapi"
)

// CreateStudyRequestBuilder builds a CreateStudyRequest; the study spec is required
type CreateStudyRequestBuilder struct {
	owner       string
	displayName string
	spec        *StudySpec
}

// NewCreateStudyRequestBuilder returns a builder for creating a study under the specified owner
func NewCreateStudyRequestBuilder(owner string) CreateStudyRequestBuilder {
	return CreateStudyRequestBuilder{owner: owner}
}

// WithDisplayName sets the human readable name of the study
func (b CreateStudyRequestBuilder) WithDisplayName(displayName string) CreateStudyRequestBuilder {
	b.displayName = displayName
	return b
}

// WithStudySpec sets the configuration of the study
func (b CreateStudyRequestBuilder) WithStudySpec(spec StudySpec) CreateStudyRequestBuilder {
	b.spec = spec.DeepCopy()
	return b
}

// Build returns the request, failing with an `ErrConfiguration` error if no study spec was set
func (b CreateStudyRequestBuilder) Build() (CreateStudyRequest, error) {
	if b.spec == nil {
		return CreateStudyRequest{}, vizierapi.NewError(vizierapi.ErrConfiguration, nil, "study spec is required to create a study")
	}
	return CreateStudyRequest{
		Parent: OwnerName(b.owner),
		Study: Study{
			DisplayName: b.displayName,
			StudySpec:   *b.spec.DeepCopy(),
		},
	}, nil
}

// GetStudyRequestBuilder builds a GetStudyRequest
type GetStudyRequestBuilder struct {
	name StudyName
}

// NewGetStudyRequestBuilder returns a builder for fetching the named study
func NewGetStudyRequestBuilder(name StudyName) GetStudyRequestBuilder {
	return GetStudyRequestBuilder{name: name}
}

// Build returns the request
func (b GetStudyRequestBuilder) Build() GetStudyRequest {
	return GetStudyRequest{Name: b.name.String()}
}

// ListStudiesRequestBuilder builds a ListStudiesRequest
type ListStudiesRequestBuilder struct {
	owner     string
	pageToken string
	pageSize  int32
}

// NewListStudiesRequestBuilder returns a builder for listing the studies of the specified owner
func NewListStudiesRequestBuilder(owner string) ListStudiesRequestBuilder {
	return ListStudiesRequestBuilder{owner: owner}
}

// WithPageToken sets the token of the page to fetch, the first page is fetched if it is not set
func (b ListStudiesRequestBuilder) WithPageToken(pageToken string) ListStudiesRequestBuilder {
	b.pageToken = pageToken
	return b
}

// WithPageSize sets the maximum number of studies to return, the server default is used if it is not set
func (b ListStudiesRequestBuilder) WithPageSize(pageSize int32) ListStudiesRequestBuilder {
	b.pageSize = pageSize
	return b
}

// Build returns the request
func (b ListStudiesRequestBuilder) Build() ListStudiesRequest {
	return ListStudiesRequest{
		Parent:    OwnerName(b.owner),
		PageToken: b.pageToken,
		PageSize:  b.pageSize,
	}
}

// DeleteStudyRequestBuilder builds a DeleteStudyRequest
type DeleteStudyRequestBuilder struct {
	name StudyName
}

// NewDeleteStudyRequestBuilder returns a builder for deleting the named study
func NewDeleteStudyRequestBuilder(name StudyName) DeleteStudyRequestBuilder {
	return DeleteStudyRequestBuilder{name: name}
}

// Build returns the request
func (b DeleteStudyRequestBuilder) Build() DeleteStudyRequest {
	return DeleteStudyRequest{Name: b.name.String()}
}
