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
package relation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Parts holds exactly one value per ComponentName. It is a value type:
// WithOverrides returns a modified copy and never touches the receiver.
type Parts[T any] struct {
	Database   T `mapstructure:"database" yaml:"database"`
	Schema     T `mapstructure:"schema" yaml:"schema"`
	Identifier T `mapstructure:"identifier" yaml:"identifier"`
}

func (p Parts[T]) Get(key ComponentName) T {
	switch key {
	case ComponentDatabase:
		return p.Database
	case ComponentSchema:
		return p.Schema
	case ComponentIdentifier:
		return p.Identifier
	default:
		panic(fmt.Sprintf("got a key of %q, expected one of %v", key, ComponentNames))
	}
}

func (p Parts[T]) WithOverrides(overrides map[ComponentName]T) Parts[T] {
	for key, value := range overrides {
		switch key {
		case ComponentDatabase:
			p.Database = value
		case ComponentSchema:
			p.Schema = value
		case ComponentIdentifier:
			p.Identifier = value
		default:
			panic(fmt.Sprintf("got a key of %q, expected one of %v", key, ComponentNames))
		}
	}
	return p
}

func (p Parts[T]) ToMap() map[string]any {
	result := make(map[string]any, len(ComponentNames))
	for _, key := range ComponentNames {
		result[key.String()] = p.Get(key)
	}
	return result
}

// Policy is a per-part flag set, used both for inclusion and for quoting.
type Policy = Parts[bool]

func NewPolicy(database, schema, identifier bool) Policy {
	return Policy{Database: database, Schema: schema, Identifier: identifier}
}

// DefaultPolicy includes and quotes every part.
func DefaultPolicy() Policy {
	return NewPolicy(true, true, true)
}

func DefaultQuotePolicy() Policy {
	return DefaultPolicy()
}

func DefaultIncludePolicy() Policy {
	return DefaultPolicy()
}

// policyOverrides keeps only the flags that were supplied.
func policyOverrides(database, schema, identifier *bool) map[ComponentName]bool {
	supplied := map[ComponentName]*bool{
		ComponentDatabase:   database,
		ComponentSchema:     schema,
		ComponentIdentifier: identifier,
	}
	result := make(map[ComponentName]bool)
	for key, value := range supplied {
		if value != nil {
			result[key] = *value
		}
	}
	return result
}

// Path is the three-part identity of a relation. Unset parts are nil.
// Paths never share part pointers with their callers: NewPath, WithOverrides
// and Clone all copy the strings.
type Path struct {
	Parts[*string] `mapstructure:",squash" yaml:",inline"`
}

func NewPath(database, schema, identifier *string) Path {
	return Path{Parts[*string]{
		Database:   clonePart(database),
		Schema:     clonePart(schema),
		Identifier: clonePart(identifier),
	}}
}

func (p Path) WithOverrides(overrides map[ComponentName]*string) Path {
	return Path{p.Parts.WithOverrides(overrides)}.Clone()
}

// Clone returns a path with its own copy of every part.
func (p Path) Clone() Path {
	return NewPath(p.Database, p.Schema, p.Identifier)
}

func clonePart(part *string) *string {
	if part == nil {
		return nil
	}
	return lo.ToPtr(*part)
}

// GetLowered returns the part case-folded, or nil if it is unset.
func (p Path) GetLowered(key ComponentName) *string {
	part := p.Get(key)
	if part == nil {
		return nil
	}
	return lo.ToPtr(strings.ToLower(*part))
}

func (p Path) ToMap() map[string]any {
	result := make(map[string]any, len(ComponentNames))
	for _, key := range ComponentNames {
		if part := p.Get(key); part != nil {
			result[key.String()] = *part
		} else {
			result[key.String()] = nil
		}
	}
	return result
}

func (p Path) String() string {
	parts := lo.Map(ComponentNames, func(key ComponentName, _ int) string {
		return lo.FromPtr(p.Get(key))
	})
	return strings.Join(parts, ".")
}
