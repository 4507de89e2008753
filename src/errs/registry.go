/*
Copyright (c) YugabyteDB, Inc.

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

package errs

import (
	"fmt"
	"strings"
)

type RelationNotFoundError struct {
	Search string
}

func (e *RelationNotFoundError) Error() string {
	return fmt.Sprintf("relation not found: %s", e.Search)
}

func NewRelationNotFoundError(search string) *RelationNotFoundError {
	return &RelationNotFoundError{Search: search}
}

type MultipleMatchingRelationsError struct {
	Search string
	Names  []string
}

func (e *MultipleMatchingRelationsError) Error() string {
	return fmt.Sprintf("multiple relations match %s: %s", e.Search, strings.Join(e.Names, ", "))
}

func NewMultipleMatchingRelationsError(search string, names []string) *MultipleMatchingRelationsError {
	return &MultipleMatchingRelationsError{
		Search: search,
		Names:  names,
	}
}

type InvalidRelationNameError struct {
	Name   string
	Reason string
}

func (e *InvalidRelationNameError) Error() string {
	return fmt.Sprintf("invalid relation name [%s]: %s", e.Name, e.Reason)
}
