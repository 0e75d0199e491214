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

// StudyState describes the lifecycle of a study
type StudyState string

const (
	StudyStateUnspecified StudyState = "STATE_UNSPECIFIED"
	StudyStateActive      StudyState = "ACTIVE"
	StudyStateInactive    StudyState = "INACTIVE"
	StudyStateCompleted   StudyState = "COMPLETED"
)

// Study is an optimization problem: a search space, the metrics to optimize and the trials evaluated so far
type Study struct {
	// The resource name of the study, `owners/{owner}/studies/{study}`; assigned by the server.
	Name string `json:"name,omitempty"`
	// The human readable name of the study.
	DisplayName string `json:"displayName,omitempty"`
	// The configuration of the study.
	StudySpec StudySpec `json:"studySpec"`
	// The current state of the study.
	State StudyState `json:"state,omitempty"`
	// The time the study was created.
	CreateTime *time.Time `json:"createTime,omitempty"`
	// The reason the study became inactive, if it is not active.
	InactiveReason string `json:"inactiveReason,omitempty"`
}

// MessageName returns the fully qualified protocol message name.
func (*Study) MessageName() string { return protoPackage + ".Study" }

// ObservationNoise describes the amount of noise expected in the evaluation of a trial
type ObservationNoise string

const (
	ObservationNoiseUnspecified ObservationNoise = "OBSERVATION_NOISE_UNSPECIFIED"
	ObservationNoiseLow         ObservationNoise = "LOW"
	ObservationNoiseHigh        ObservationNoise = "HIGH"
)

// MeasurementSelectionType describes which measurement of a trial is used when it has no final measurement
type MeasurementSelectionType string

const (
	MeasurementSelectionTypeUnspecified MeasurementSelectionType = "MEASUREMENT_SELECTION_TYPE_UNSPECIFIED"
	MeasurementSelectionLast            MeasurementSelectionType = "LAST_MEASUREMENT"
	MeasurementSelectionBest            MeasurementSelectionType = "BEST_MEASUREMENT"
)

// StudySpec is the configuration of a study
type StudySpec struct {
	// The metrics being optimized, order is significant.
	Metrics []MetricSpec `json:"metrics,omitempty"`
	// The search space, order is significant.
	Parameters []ParameterSpec `json:"parameters,omitempty"`
	// The early stopping policy, at most one member may be set.
	AutomatedStoppingSpec `json:",inline"`
	// The name of the algorithm used to suggest trials.
	Algorithm string `json:"algorithm,omitempty"`
	// The amount of noise in trial evaluations.
	ObservationNoise ObservationNoise `json:"observationNoise,omitempty"`
	// The measurement used for trials which do not have a final measurement.
	MeasurementSelectionType MeasurementSelectionType `json:"measurementSelectionType,omitempty"`
	// Additional study metadata.
	Metadata []KeyValue `json:"metadata,omitempty"`
	// The address of an external Pythia service used by the algorithm.
	PythiaEndpoint string `json:"pythiaEndpoint,omitempty"`
}

// KeyValue is a metadata entry
type KeyValue struct {
	Key         string `json:"key"`
	Namespace   string `json:"ns,omitempty"`
	StringValue string `json:"stringValue,omitempty"`
}

// GoalType is the direction in which a metric is optimized
type GoalType string

const (
	GoalTypeUnspecified GoalType = "GOAL_TYPE_UNSPECIFIED"
	GoalTypeMaximize    GoalType = "MAXIMIZE"
	GoalTypeMinimize    GoalType = "MINIMIZE"
)

// MetricSpec is a metric being optimized
type MetricSpec struct {
	// The identifier of the metric, it should be unique and must not contain white space.
	MetricID string `json:"metricId"`
	// The optimization goal.
	Goal GoalType `json:"goal,omitempty"`
	// The safety configuration for the metric, if it is a safety metric.
	SafetyConfig *SafetyMetricConfig `json:"safetyConfig,omitempty"`
}

// SafetyMetricConfig marks a metric as a safety constraint
type SafetyMetricConfig struct {
	// The threshold used to determine if a trial is safe.
	SafetyThreshold float64 `json:"safetyThreshold"`
	// The desired minimum fraction of safe trials.
	DesiredMinSafeTrialsFraction *float64 `json:"desiredMinSafeTrialsFraction,omitempty"`
}

// ScaleType describes how a numeric parameter is scaled before being suggested
type ScaleType string

const (
	ScaleTypeUnspecified ScaleType = "SCALE_TYPE_UNSPECIFIED"
	ScaleTypeLinear      ScaleType = "UNIT_LINEAR_SCALE"
	ScaleTypeLog         ScaleType = "UNIT_LOG_SCALE"
	ScaleTypeReverseLog  ScaleType = "UNIT_REVERSE_LOG_SCALE"
)

// ParameterSpec is a single dimension of the search space
type ParameterSpec struct {
	// The identifier of the parameter.
	ParameterID string `json:"parameterId"`
	// The feasible values of the parameter, exactly one member must be set.
	ParameterDomain `json:",inline"`
	// How the parameter is scaled.
	ScaleType ScaleType `json:"scaleType,omitempty"`
	// Parameters that are only active for specific values of this parameter.
	ConditionalParameterSpecs []ConditionalParameterSpec `json:"conditionalParameterSpecs,omitempty"`
}

// ParameterDomain holds the feasible values of a parameter
type ParameterDomain struct {
	DoubleValueSpec      *DoubleValueSpec      `json:"doubleValueSpec,omitempty"`
	IntegerValueSpec     *IntegerValueSpec     `json:"integerValueSpec,omitempty"`
	CategoricalValueSpec *CategoricalValueSpec `json:"categoricalValueSpec,omitempty"`
	DiscreteValueSpec    *DiscreteValueSpec    `json:"discreteValueSpec,omitempty"`
}

// DoubleValueSpec is a continuous range
type DoubleValueSpec struct {
	MinValue     float64  `json:"minValue"`
	MaxValue     float64  `json:"maxValue"`
	DefaultValue *float64 `json:"defaultValue,omitempty"`
}

// IntegerValueSpec is an integer range
type IntegerValueSpec struct {
	MinValue     Int64  `json:"minValue"`
	MaxValue     Int64  `json:"maxValue"`
	DefaultValue *Int64 `json:"defaultValue,omitempty"`
}

// CategoricalValueSpec is a list of categories
type CategoricalValueSpec struct {
	Values       []string `json:"values"`
	DefaultValue *string  `json:"defaultValue,omitempty"`
}

// DiscreteValueSpec is an ordered list of numeric values
type DiscreteValueSpec struct {
	Values       []float64 `json:"values"`
	DefaultValue *float64  `json:"defaultValue,omitempty"`
}

// ConditionalParameterSpec is a parameter which is only active when its parent has one of the specified values
type ConditionalParameterSpec struct {
	ParentDiscreteValues    *DiscreteValueCondition    `json:"parentDiscreteValues,omitempty"`
	ParentIntValues         *IntValueCondition         `json:"parentIntValues,omitempty"`
	ParentCategoricalValues *CategoricalValueCondition `json:"parentCategoricalValues,omitempty"`
	ParameterSpec           ParameterSpec              `json:"parameterSpec"`
}

// DiscreteValueCondition matches values of a discrete parent
type DiscreteValueCondition struct {
	Values []float64 `json:"values"`
}

// IntValueCondition matches values of an integer parent
type IntValueCondition struct {
	Values []Int64 `json:"values"`
}

// CategoricalValueCondition matches values of a categorical parent
type CategoricalValueCondition struct {
	Values []string `json:"values"`
}

// AutomatedStoppingSpec selects the early stopping policy of a study
type AutomatedStoppingSpec struct {
	DefaultStoppingSpec         *DefaultEarlyStoppingSpec        `json:"defaultStoppingSpec,omitempty"`
	DecayCurveStoppingSpec      *DecayCurveAutomatedStoppingSpec `json:"decayCurveStoppingSpec,omitempty"`
	MedianAutomatedStoppingSpec *MedianAutomatedStoppingSpec     `json:"medianAutomatedStoppingSpec,omitempty"`
}

// DefaultEarlyStoppingSpec uses the service's default policy
type DefaultEarlyStoppingSpec struct{}

// DecayCurveAutomatedStoppingSpec stops trials whose predicted final objective is worse than the best so far
type DecayCurveAutomatedStoppingSpec struct {
	UseElapsedDuration bool `json:"useElapsedDuration,omitempty"`
}

// MedianAutomatedStoppingSpec stops trials whose running average is worse than the median of completed trials
type MedianAutomatedStoppingSpec struct {
	UseElapsedDuration bool `json:"useElapsedDuration,omitempty"`
}

// CreateStudyRequest creates a study under an owner
type CreateStudyRequest struct {
	// The owner the study is created under, `owners/{owner}`.
	Parent string `json:"parent"`
	// The study to create.
	Study Study `json:"study"`
}

// GetStudyRequest fetches a single study
type GetStudyRequest struct {
	Name string `json:"name"`
}

// ListStudiesRequest fetches a page of the studies of an owner
type ListStudiesRequest struct {
	// The owner whose studies are listed, `owners/{owner}`.
	Parent string `json:"parent"`
	// The token of the page to fetch, empty for the first page.
	PageToken string `json:"pageToken,omitempty"`
	// The maximum number of studies to return, zero for the server default.
	PageSize int32 `json:"pageSize,omitempty"`
}

// ListStudiesResponse is a page of studies
type ListStudiesResponse struct {
	Studies []Study `json:"studies,omitempty"`
	// The token of the next page, empty if this is the last page.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// DeleteStudyRequest deletes a study and all of its trials
type DeleteStudyRequest struct {
	Name string `json:"name"`
}
