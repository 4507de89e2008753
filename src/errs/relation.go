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
	"errors"
	"fmt"
)

var (
	// ErrInvalidSearchCriteria is returned by a match when no search part was supplied.
	ErrInvalidSearchCriteria = errors.New("tried to match relation, but no search path was passed")
	// ErrEmptyRender is returned when the include policy leaves no path part to render.
	ErrEmptyRender = errors.New("no path parts are included, nothing to render")
)

// AmbiguousMatchError describes a relation that matched a search case-insensitively
// but not exactly. It is reported, never returned from a match.
type AmbiguousMatchError struct {
	Target   string // rendered form of the relation built from the search
	Relation string // rendered form of the stored relation
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("when searching for a relation, found an approximate match: searched for %s, found %s; "+
		"the names differ only by case and quoting makes them distinct", e.Target, e.Relation)
}

func NewAmbiguousMatchError(target, relation string) *AmbiguousMatchError {
	return &AmbiguousMatchError{
		Target:   target,
		Relation: relation,
	}
}

type SchemaValidationError struct {
	field string
	err   error
}

func (e *SchemaValidationError) Error() string {
	if e.field == "" {
		return fmt.Sprintf("invalid relation fields: %s", e.err.Error())
	}
	return fmt.Sprintf("invalid relation field %q: %s", e.field, e.err.Error())
}

func (e *SchemaValidationError) Field() string {
	return e.field
}

func (e *SchemaValidationError) Unwrap() error {
	return e.err
}

func NewSchemaValidationError(field string, err error) *SchemaValidationError {
	return &SchemaValidationError{
		field: field,
		err:   err,
	}
}

type UnsupportedDescriptorError struct {
	ResourceKind string
	GoType       string
}

func (e *UnsupportedDescriptorError) Error() string {
	return fmt.Sprintf("cannot create a relation from descriptor of type %s with resource kind %q", e.GoType, e.ResourceKind)
}

func NewUnsupportedDescriptorError(resourceKind string, descriptor any) *UnsupportedDescriptorError {
	return &UnsupportedDescriptorError{
		ResourceKind: resourceKind,
		GoType:       fmt.Sprintf("%T", descriptor),
	}
}
