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

// Deep copy functions keep built requests from sharing memory with the values they were built from

// DeepCopyInto copies the receiver into out, in must be non-nil.
func (in *StudySpec) DeepCopyInto(out *StudySpec) {
	*out = *in
	if in.Metrics != nil {
		out.Metrics = make([]MetricSpec, len(in.Metrics))
		for i := range in.Metrics {
			in.Metrics[i].DeepCopyInto(&out.Metrics[i])
		}
	}
	if in.Parameters != nil {
		out.Parameters = make([]ParameterSpec, len(in.Parameters))
		for i := range in.Parameters {
			in.Parameters[i].DeepCopyInto(&out.Parameters[i])
		}
	}
	in.AutomatedStoppingSpec.DeepCopyInto(&out.AutomatedStoppingSpec)
	if in.Metadata != nil {
		out.Metadata = make([]KeyValue, len(in.Metadata))
		copy(out.Metadata, in.Metadata)
	}
}

// DeepCopy creates a new StudySpec.
func (in *StudySpec) DeepCopy() *StudySpec {
	if in == nil {
		return nil
	}
	out := new(StudySpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out, in must be non-nil.
func (in *MetricSpec) DeepCopyInto(out *MetricSpec) {
	*out = *in
	if in.SafetyConfig != nil {
		out.SafetyConfig = new(SafetyMetricConfig)
		*out.SafetyConfig = *in.SafetyConfig
		if in.SafetyConfig.DesiredMinSafeTrialsFraction != nil {
			f := *in.SafetyConfig.DesiredMinSafeTrialsFraction
			out.SafetyConfig.DesiredMinSafeTrialsFraction = &f
		}
	}
}

// DeepCopyInto copies the receiver into out, in must be non-nil.
func (in *ParameterSpec) DeepCopyInto(out *ParameterSpec) {
	*out = *in
	in.ParameterDomain.DeepCopyInto(&out.ParameterDomain)
	if in.ConditionalParameterSpecs != nil {
		out.ConditionalParameterSpecs = make([]ConditionalParameterSpec, len(in.ConditionalParameterSpecs))
		for i := range in.ConditionalParameterSpecs {
			in.ConditionalParameterSpecs[i].DeepCopyInto(&out.ConditionalParameterSpecs[i])
		}
	}
}

// DeepCopyInto copies the receiver into out, in must be non-nil.
func (in *ParameterDomain) DeepCopyInto(out *ParameterDomain) {
	*out = *in
	if in.DoubleValueSpec != nil {
		out.DoubleValueSpec = new(DoubleValueSpec)
		*out.DoubleValueSpec = *in.DoubleValueSpec
		out.DoubleValueSpec.DefaultValue = copyFloat64(in.DoubleValueSpec.DefaultValue)
	}
	if in.IntegerValueSpec != nil {
		out.IntegerValueSpec = new(IntegerValueSpec)
		*out.IntegerValueSpec = *in.IntegerValueSpec
		if in.IntegerValueSpec.DefaultValue != nil {
			v := *in.IntegerValueSpec.DefaultValue
			out.IntegerValueSpec.DefaultValue = &v
		}
	}
	if in.CategoricalValueSpec != nil {
		out.CategoricalValueSpec = new(CategoricalValueSpec)
		out.CategoricalValueSpec.Values = copyStrings(in.CategoricalValueSpec.Values)
		if in.CategoricalValueSpec.DefaultValue != nil {
			v := *in.CategoricalValueSpec.DefaultValue
			out.CategoricalValueSpec.DefaultValue = &v
		}
	}
	if in.DiscreteValueSpec != nil {
		out.DiscreteValueSpec = new(DiscreteValueSpec)
		out.DiscreteValueSpec.Values = copyFloat64s(in.DiscreteValueSpec.Values)
		out.DiscreteValueSpec.DefaultValue = copyFloat64(in.DiscreteValueSpec.DefaultValue)
	}
}

// DeepCopyInto copies the receiver into out, in must be non-nil.
func (in *ConditionalParameterSpec) DeepCopyInto(out *ConditionalParameterSpec) {
	*out = *in
	if in.ParentDiscreteValues != nil {
		out.ParentDiscreteValues = &DiscreteValueCondition{Values: copyFloat64s(in.ParentDiscreteValues.Values)}
	}
	if in.ParentIntValues != nil {
		out.ParentIntValues = &IntValueCondition{}
		if in.ParentIntValues.Values != nil {
			out.ParentIntValues.Values = make([]Int64, len(in.ParentIntValues.Values))
			copy(out.ParentIntValues.Values, in.ParentIntValues.Values)
		}
	}
	if in.ParentCategoricalValues != nil {
		out.ParentCategoricalValues = &CategoricalValueCondition{Values: copyStrings(in.ParentCategoricalValues.Values)}
	}
	in.ParameterSpec.DeepCopyInto(&out.ParameterSpec)
}

// DeepCopyInto copies the receiver into out, in must be non-nil.
func (in *AutomatedStoppingSpec) DeepCopyInto(out *AutomatedStoppingSpec) {
	*out = *in
	if in.DefaultStoppingSpec != nil {
		out.DefaultStoppingSpec = &DefaultEarlyStoppingSpec{}
	}
	if in.DecayCurveStoppingSpec != nil {
		v := *in.DecayCurveStoppingSpec
		out.DecayCurveStoppingSpec = &v
	}
	if in.MedianAutomatedStoppingSpec != nil {
		v := *in.MedianAutomatedStoppingSpec
		out.MedianAutomatedStoppingSpec = &v
	}
}

// DeepCopyInto copies the receiver into out, in must be non-nil.
func (in *Trial) DeepCopyInto(out *Trial) {
	*out = *in
	if in.Parameters != nil {
		out.Parameters = make([]TrialParameter, len(in.Parameters))
		copy(out.Parameters, in.Parameters)
	}
	if in.FinalMeasurement != nil {
		out.FinalMeasurement = in.FinalMeasurement.DeepCopy()
	}
	if in.Measurements != nil {
		out.Measurements = make([]Measurement, len(in.Measurements))
		for i := range in.Measurements {
			in.Measurements[i].DeepCopyInto(&out.Measurements[i])
		}
	}
	if in.StartTime != nil {
		t := *in.StartTime
		out.StartTime = &t
	}
	if in.EndTime != nil {
		t := *in.EndTime
		out.EndTime = &t
	}
}

// DeepCopy creates a new Trial.
func (in *Trial) DeepCopy() *Trial {
	if in == nil {
		return nil
	}
	out := new(Trial)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out, in must be non-nil.
func (in *Measurement) DeepCopyInto(out *Measurement) {
	*out = *in
	if in.ElapsedDuration != nil {
		d := *in.ElapsedDuration
		out.ElapsedDuration = &d
	}
	if in.Metrics != nil {
		out.Metrics = make([]Metric, len(in.Metrics))
		copy(out.Metrics, in.Metrics)
	}
}

// DeepCopy creates a new Measurement.
func (in *Measurement) DeepCopy() *Measurement {
	if in == nil {
		return nil
	}
	out := new(Measurement)
	in.DeepCopyInto(out)
	return out
}

func copyFloat64(in *float64) *float64 {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func copyFloat64s(in []float64) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, len(in))
	copy(out, in)
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
