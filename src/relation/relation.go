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
	"reflect"

	"github.com/cespare/xxhash/v2"
)

const DefaultQuoteCharacter = `"`

// Relation is a qualified database object name together with the rules used
// to render it. Relations are values: every With*/Quote/Include call returns
// a new Relation and leaves the receiver unchanged. Path parts go in and come
// out as copies, so no caller can reach the stored strings.
//
// Two relations are equal when they render to the same string, whatever
// policies produced that string.
type Relation struct {
	kind           RelationKind
	path           Path
	quoteCharacter string
	includePolicy  Policy
	quotePolicy    Policy
	engineCreated  bool
}

// New returns a relation with the default quote character and policies.
func New(path Path, kind RelationKind) Relation {
	return Relation{
		kind:           kind,
		path:           path.Clone(),
		quoteCharacter: DefaultQuoteCharacter,
		includePolicy:  DefaultIncludePolicy(),
		quotePolicy:    DefaultQuotePolicy(),
	}
}

func (r Relation) Kind() RelationKind { return r.kind }
func (r Relation) Path() Path { return r.path.Clone() }
func (r Relation) QuoteCharacter() string { return r.quoteCharacter }
func (r Relation) IncludePolicy() Policy { return r.includePolicy }
func (r Relation) QuotePolicy() Policy { return r.quotePolicy }
func (r Relation) EngineCreated() bool { return r.engineCreated }
func (r Relation) Database() *string { return clonePart(r.path.Database) }
func (r Relation) Schema() *string { return clonePart(r.path.Schema) }
func (r Relation) Identifier() *string { return clonePart(r.path.Identifier) }
func (r Relation) Table() *string { return r.Identifier() }
func (r Relation) Name() *string { return r.Identifier() }
func (r Relation) IsTable() bool { return r.kind == Table }
func (r Relation) IsView() bool { return r.kind == View }
func (r Relation) IsCTE() bool { return r.kind == CTE }
func (r Relation) IsMaterializedView() bool { return r.kind == MaterializedView }

func (r Relation) WithKind(kind RelationKind) Relation {
	r.kind = kind
	return r
}

func (r Relation) WithPath(path Path) Relation {
	r.path = path.Clone()
	return r
}

// WithQuoteCharacter fails with a SchemaValidationError unless quoteCharacter
// is a single character.
func (r Relation) WithQuoteCharacter(quoteCharacter string) (Relation, error) {
	if err := validateQuoteCharacter(quoteCharacter); err != nil {
		return Relation{}, err
	}
	r.quoteCharacter = quoteCharacter
	return r, nil
}

func (r Relation) WithIncludePolicy(policy Policy) Relation {
	r.includePolicy = policy
	return r
}

func (r Relation) WithQuotePolicy(policy Policy) Relation {
	r.quotePolicy = policy
	return r
}

func (r Relation) WithEngineCreated(engineCreated bool) Relation {
	r.engineCreated = engineCreated
	return r
}

// Quote overrides the supplied quoting flags; nil flags keep their value.
func (r Relation) Quote(database, schema, identifier *bool) Relation {
	return r.WithQuotePolicy(r.quotePolicy.WithOverrides(policyOverrides(database, schema, identifier)))
}

// Include overrides the supplied inclusion flags; nil flags keep their value.
func (r Relation) Include(database, schema, identifier *bool) Relation {
	return r.WithIncludePolicy(r.includePolicy.WithOverrides(policyOverrides(database, schema, identifier)))
}

// Key is the rendered form, or "" when nothing is included.
func (r Relation) Key() string {
	rendered, err := r.Render()
	if err != nil {
		return ""
	}
	return rendered
}

func (r Relation) String() string {
	return r.Key()
}

func (r Relation) GoString() string {
	return fmt.Sprintf("<Relation %s>", r.Key())
}

// Equal compares rendered forms. Relations that cannot render are equal
// only when all their fields are.
func (r Relation) Equal(other Relation) bool {
	a, errA := r.Render()
	b, errB := other.Render()
	if errA != nil || errB != nil {
		return errA != nil && errB != nil && reflect.DeepEqual(r.ToMap(), other.ToMap())
	}
	return a == b
}

func (r Relation) Hash() uint64 {
	return xxhash.Sum64String(r.Key())
}

// ToMap converts the relation into the field map accepted by Create and Incorporate.
func (r Relation) ToMap() map[string]any {
	var kind any
	if r.kind != "" {
		kind = r.kind.String()
	}
	return map[string]any{
		fieldType:           kind,
		fieldPath:           r.path.ToMap(),
		fieldQuoteCharacter: r.quoteCharacter,
		fieldIncludePolicy:  r.includePolicy.ToMap(),
		fieldQuotePolicy:    r.quotePolicy.ToMap(),
		fieldEngineCreated:  r.engineCreated,
	}
}
