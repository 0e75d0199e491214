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

// StudySpecBuilder builds the configuration of a study
type StudySpecBuilder struct {
	spec StudySpec
}

// NewStudySpecBuilder returns a builder for a study using the named algorithm
func NewStudySpecBuilder(algorithm string, observationNoise ObservationNoise) StudySpecBuilder {
	return StudySpecBuilder{spec: StudySpec{
		Algorithm:        algorithm,
		ObservationNoise: observationNoise,
	}}
}

// WithMetricSpecs sets the metrics being optimized
func (b StudySpecBuilder) WithMetricSpecs(metrics []MetricSpec) StudySpecBuilder {
	b.spec.Metrics = metrics
	return b
}

// WithParameters sets the search space
func (b StudySpecBuilder) WithParameters(parameters []ParameterSpec) StudySpecBuilder {
	b.spec.Parameters = parameters
	return b
}

// WithAutomatedStoppingSpec sets the early stopping policy
func (b StudySpecBuilder) WithAutomatedStoppingSpec(stopping AutomatedStoppingSpec) StudySpecBuilder {
	b.spec.AutomatedStoppingSpec = stopping
	return b
}

// WithMetadata sets the study metadata
func (b StudySpecBuilder) WithMetadata(metadata []KeyValue) StudySpecBuilder {
	b.spec.Metadata = metadata
	return b
}

// WithPythiaEndpoint sets the address of an external Pythia service
func (b StudySpecBuilder) WithPythiaEndpoint(endpoint string) StudySpecBuilder {
	b.spec.PythiaEndpoint = endpoint
	return b
}

// WithMeasurementSelectionType sets the measurement used for trials without a final measurement
func (b StudySpecBuilder) WithMeasurementSelectionType(t MeasurementSelectionType) StudySpecBuilder {
	b.spec.MeasurementSelectionType = t
	return b
}

// Build returns a copy of the study spec
func (b StudySpecBuilder) Build() StudySpec {
	return *b.spec.DeepCopy()
}

// MaximizeMetric returns a metric that should be maximized
func MaximizeMetric(metricID string) MetricSpec {
	return MetricSpec{MetricID: metricID, Goal: GoalTypeMaximize}
}

// MinimizeMetric returns a metric that should be minimized
func MinimizeMetric(metricID string) MetricSpec {
	return MetricSpec{MetricID: metricID, Goal: GoalTypeMinimize}
}

// DoubleParameter returns a continuous parameter in the closed range [min, max]
func DoubleParameter(parameterID string, min, max float64, scale ScaleType) ParameterSpec {
	return ParameterSpec{
		ParameterID:     parameterID,
		ParameterDomain: ParameterDomain{DoubleValueSpec: &DoubleValueSpec{MinValue: min, MaxValue: max}},
		ScaleType:       scale,
	}
}

// IntegerParameter returns an integer parameter in the closed range [min, max]
func IntegerParameter(parameterID string, min, max int64, scale ScaleType) ParameterSpec {
	return ParameterSpec{
		ParameterID:     parameterID,
		ParameterDomain: ParameterDomain{IntegerValueSpec: &IntegerValueSpec{MinValue: Int64(min), MaxValue: Int64(max)}},
		ScaleType:       scale,
	}
}

// DiscreteParameter returns a parameter restricted to the supplied numeric values
func DiscreteParameter(parameterID string, values ...float64) ParameterSpec {
	return ParameterSpec{
		ParameterID:     parameterID,
		ParameterDomain: ParameterDomain{DiscreteValueSpec: &DiscreteValueSpec{Values: copyFloat64s(values)}},
	}
}

// CategoricalParameter returns a parameter restricted to the supplied categories
func CategoricalParameter(parameterID string, values ...string) ParameterSpec {
	return ParameterSpec{
		ParameterID:     parameterID,
		ParameterDomain: ParameterDomain{CategoricalValueSpec: &CategoricalValueSpec{Values: copyStrings(values)}},
	}
}
