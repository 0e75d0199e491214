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

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	cases := []struct {
		desc     string
		info     Info
		expected string
	}{
		{
			desc:     "empty",
			expected: defaultVersion,
		},
		{
			desc:     "pre-release with metadata",
			info:     Info{Version: "v0.3.0-rc.1", BuildMetadata: "abc123"},
			expected: "v0.3.0-rc.1+abc123",
		},
		{
			desc:     "release drops metadata",
			info:     Info{Version: "v0.3.0", BuildMetadata: "abc123"},
			expected: "v0.3.0",
		},
		{
			desc:     "pre-release without metadata",
			info:     Info{Version: "v0.3.0-rc.1"},
			expected: "v0.3.0-rc.1",
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			assert.Equal(t, c.expected, c.info.String())
		})
	}
}

func TestGetInfo(t *testing.T) {
	defer resetVersion()

	Version = "v2.0.0"
	GitCommit = "deadbeef"

	info := GetInfo()
	assert.Equal(t, "v2.0.0", info.Version)
	assert.Equal(t, "deadbeef", info.GitCommit)
	assert.Equal(t, "v2.0.0", info.String())
}

func resetVersion() {
	Version = defaultVersion
	BuildMetadata = ""
	GitCommit = ""
}
