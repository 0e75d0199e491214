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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParameterValue is the value of a trial parameter, a JSON number or string
type ParameterValue struct {
	IsString bool
	NumVal   json.Number
	StrVal   string
}

// FromInt64 returns the supplied value as a ParameterValue
func FromInt64(val int64) ParameterValue {
	return ParameterValue{NumVal: json.Number(strconv.FormatInt(val, 10))}
}

// FromFloat64 returns the supplied value as a ParameterValue
func FromFloat64(val float64) ParameterValue {
	return ParameterValue{NumVal: json.Number(strconv.FormatFloat(val, 'f', -1, 64))}
}

// FromString returns the supplied value as a ParameterValue
func FromString(val string) ParameterValue {
	return ParameterValue{StrVal: val, IsString: true}
}

// String coerces the value to a string.
func (v *ParameterValue) String() string {
	if v.IsString {
		return v.StrVal
	}
	return v.NumVal.String()
}

// Int64Value coerces the value to an int64.
func (v *ParameterValue) Int64Value() int64 {
	if v.IsString {
		i, _ := strconv.ParseInt(v.StrVal, 10, 64)
		return i
	}
	if i, err := v.NumVal.Int64(); err == nil {
		return i
	}
	f, _ := v.NumVal.Float64()
	return int64(f)
}

// Float64Value coerces the value to a float64.
func (v *ParameterValue) Float64Value() float64 {
	if v.IsString {
		f, _ := strconv.ParseFloat(v.StrVal, 64)
		return f
	}
	f, _ := v.NumVal.Float64()
	return f
}

// MarshalJSON writes the value with the appropriate type.
func (v ParameterValue) MarshalJSON() ([]byte, error) {
	if v.IsString {
		return json.Marshal(v.StrVal)
	}
	if v.NumVal == "" {
		return []byte("0"), nil
	}
	return json.Marshal(v.NumVal)
}

// UnmarshalJSON reads the value from either a string or number.
func (v *ParameterValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		v.IsString = true
		return json.Unmarshal(b, &v.StrVal)
	}
	v.IsString = false
	return json.Unmarshal(b, &v.NumVal)
}

// Int64 is a 64-bit integer using the JSON string encoding, it also accepts plain numbers.
type Int64 int64

// MarshalJSON writes the value as a quoted decimal string.
func (i Int64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(i), 10))
}

// UnmarshalJSON reads the value from a string or number.
func (i *Int64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid int64 value %s: %w", b, err)
	}
	*i = Int64(v)
	return nil
}

// Duration is a span of time using the JSON encoding of seconds with an "s" suffix, e.g. "1.5s".
type Duration struct {
	time.Duration
}

// MarshalJSON writes the duration in seconds.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s")
}

// UnmarshalJSON reads the duration in seconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if !strings.HasSuffix(s, "s") {
		return fmt.Errorf("invalid duration %q: missing seconds suffix", s)
	}
	secs, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = time.Duration(secs * float64(time.Second))
	return nil
}
