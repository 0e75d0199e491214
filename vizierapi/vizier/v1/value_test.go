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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterValue(t *testing.T) {
	cases := []struct {
		desc    string
		value   ParameterValue
		json    string
		str     string
		int64   int64
		float64 float64
	}{
		{
			desc:    "int",
			value:   FromInt64(12),
			json:    `12`,
			str:     "12",
			int64:   12,
			float64: 12,
		},
		{
			desc:    "float",
			value:   FromFloat64(0.25),
			json:    `0.25`,
			str:     "0.25",
			int64:   0,
			float64: 0.25,
		},
		{
			desc:    "string",
			value:   FromString("adam"),
			json:    `"adam"`,
			str:     "adam",
			int64:   0,
			float64: 0,
		},
		{
			desc:    "numeric string",
			value:   FromString("3"),
			json:    `"3"`,
			str:     "3",
			int64:   3,
			float64: 3,
		},
		{
			desc:    "zero",
			value:   ParameterValue{},
			json:    `0`,
			str:     "",
			int64:   0,
			float64: 0,
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			b, err := json.Marshal(c.value)
			require.NoError(t, err)
			assert.JSONEq(t, c.json, string(b))
			assert.Equal(t, c.str, c.value.String())
			assert.Equal(t, c.int64, c.value.Int64Value())
			assert.Equal(t, c.float64, c.value.Float64Value())

			v := ParameterValue{}
			require.NoError(t, json.Unmarshal(b, &v))
			assert.Equal(t, c.value.IsString, v.IsString)
		})
	}
}

func TestInt64_JSON(t *testing.T) {
	cases := []struct {
		desc     string
		json     string
		expected Int64
		err      bool
	}{
		{desc: "string", json: `"9007199254740993"`, expected: 9007199254740993},
		{desc: "number", json: `42`, expected: 42},
		{desc: "negative", json: `"-5"`, expected: -5},
		{desc: "invalid", json: `"five"`, err: true},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			var i Int64
			err := json.Unmarshal([]byte(c.json), &i)
			if c.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, i)
		})
	}

	b, err := json.Marshal(Int64(100))
	require.NoError(t, err)
	assert.Equal(t, `"100"`, string(b))
}

func TestDuration_JSON(t *testing.T) {
	cases := []struct {
		desc     string
		json     string
		expected time.Duration
		err      bool
	}{
		{desc: "fractional", json: `"1.5s"`, expected: 1500 * time.Millisecond},
		{desc: "whole", json: `"30s"`, expected: 30 * time.Second},
		{desc: "no suffix", json: `"30"`, err: true},
		{desc: "number", json: `30`, err: true},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			d := Duration{}
			err := json.Unmarshal([]byte(c.json), &d)
			if c.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, d.Duration)
		})
	}

	b, err := json.Marshal(Duration{Duration: 2500 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, `"2.5s"`, string(b))
}
