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

import "strings"

const trialsSegment = "/trials/"

// OwnerName returns the resource name of an owner, the parent of all of its studies
func OwnerName(owner string) string {
	return "owners/" + owner
}

// StudyName exists to clearly separate cases where an actual study resource name can be used
type StudyName struct {
	name string
}

// NewStudyName returns the name of a study, `owners/{owner}/studies/{study}`
func NewStudyName(owner, study string) StudyName {
	return StudyName{name: OwnerName(owner) + "/studies/" + study}
}

// StudyNameOf returns the name of an existing study as reported by the server
func StudyNameOf(s *Study) StudyName {
	return StudyName{name: s.Name}
}

func (n StudyName) String() string { return n.name }

// TrialName exists to clearly separate cases where an actual trial resource name can be used
type TrialName struct {
	name string
}

// NewTrialName returns the name of a trial, `owners/{owner}/studies/{study}/trials/{trial}`
func NewTrialName(owner, study, trial string) TrialName {
	return TrialNameFromStudy(NewStudyName(owner, study), trial)
}

// TrialNameFromStudy returns the name of a trial in the specified study
func TrialNameFromStudy(study StudyName, trial string) TrialName {
	return TrialName{name: study.name + trialsSegment + trial}
}

// TrialNameOf returns the name of an existing trial as reported by the server
func TrialNameOf(t *Trial) TrialName {
	return TrialName{name: t.Name}
}

func (n TrialName) String() string { return n.name }

// Study returns the name of the study this trial belongs to
func (n TrialName) Study() StudyName {
	if i := strings.LastIndex(n.name, trialsSegment); i >= 0 {
		return StudyName{name: n.name[:i]}
	}
	return StudyName{}
}
