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
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/yugabyte/relcanon/src/descriptor"
	"github.com/yugabyte/relcanon/src/errs"
	"github.com/yugabyte/relcanon/src/relation"
)

type Registry struct {
	// Strict turns ambiguous matches into lookup errors.
	Strict bool

	relations []relation.Relation
	names     map[string]string // rendered relation -> descriptor unique name
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[string]string)}
}

func (reg *Registry) Register(rels ...relation.Relation) {
	reg.relations = append(reg.relations, rels...)
}

// RegisterDescriptors builds a relation for every descriptor and registers it.
func (reg *Registry) RegisterDescriptors(config descriptor.HasQuoting, descriptors []descriptor.Descriptor) error {
	if reg.names == nil {
		reg.names = make(map[string]string)
	}
	for _, d := range descriptors {
		rel, err := relation.CreateFrom(config, d, nil)
		if err != nil {
			return fmt.Errorf("register %s: %w", d.UniqueName(), err)
		}
		reg.Register(rel)
		reg.names[rel.Key()] = d.UniqueName()
		log.Debugf("registered %s as %s", d.UniqueName(), rel)
	}
	return nil
}

func (reg *Registry) Relations() []relation.Relation {
	return slices.Clone(reg.relations)
}

// DescriptorName returns the unique name of the descriptor rel was built from, if any.
func (reg *Registry) DescriptorName(rel relation.Relation) (string, bool) {
	name, ok := reg.names[rel.Key()]
	return name, ok
}

type LookupResult struct {
	Relation    relation.Relation
	Ambiguities []*errs.AmbiguousMatchError
}

/*
Lookup returns the one registered relation that exactly matches the search.

	analytics.raw.orders     exact match on all three parts
	raw.Orders               ambiguous against "raw"."orders"; reported, not matched

Relations that match only approximately are collected as ambiguities. They do
not fail the lookup unless Strict is set.
*/
func (reg *Registry) Lookup(database, schema, identifier *string) (*LookupResult, error) {
	search := describeSearch(database, schema, identifier)
	result := &LookupResult{}
	collector := relation.ReporterFunc(func(target, rel relation.Relation) {
		result.Ambiguities = append(result.Ambiguities, errs.NewAmbiguousMatchError(target.String(), rel.String()))
	})

	var matches []relation.Relation
	for _, rel := range reg.relations {
		ok, err := rel.MatchesWith(collector, database, schema, identifier)
		if err != nil {
			return nil, fmt.Errorf("lookup relation [%s]: %w", search, err)
		}
		if ok {
			matches = append(matches, rel)
		}
	}
	for _, ambiguity := range result.Ambiguities {
		log.Warnf("lookup relation [%s]: %s", search, ambiguity)
	}

	if reg.Strict && len(result.Ambiguities) > 0 {
		return result, errors.Join(lo.Map(result.Ambiguities, func(e *errs.AmbiguousMatchError, _ int) error { return e })...)
	}
	matches = lo.UniqBy(matches, func(r relation.Relation) string { return r.Key() })
	switch len(matches) {
	case 0:
		return result, errs.NewRelationNotFoundError(search)
	case 1:
		result.Relation = matches[0]
		return result, nil
	default:
		return result, errs.NewMultipleMatchingRelationsError(search,
			lo.Map(matches, func(r relation.Relation, _ int) string { return r.String() }))
	}
}

// LookupName parses a dotted, optionally quoted name and looks it up.
func (reg *Registry) LookupName(name string) (*LookupResult, error) {
	database, schema, identifier, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return reg.Lookup(database, schema, identifier)
}

/*
ParseName splits a relation name into its parts.

	orders             -> identifier
	raw.orders         -> schema, identifier
	analytics.raw."Or" -> database, schema, identifier

Surrounding double quotes or backticks are removed from each part. Dots
inside a quoted part do not split it.
*/
func ParseName(name string) (database, schema, identifier *string, err error) {
	parts, err := splitName(name)
	if err != nil {
		return nil, nil, nil, &errs.InvalidRelationNameError{Name: name, Reason: err.Error()}
	}
	for i, part := range parts {
		unquoted, err := unquote(part)
		if err != nil {
			return nil, nil, nil, &errs.InvalidRelationNameError{Name: name, Reason: err.Error()}
		}
		parts[i] = unquoted
	}
	switch len(parts) {
	case 1:
		return nil, nil, &parts[0], nil
	case 2:
		return nil, &parts[0], &parts[1], nil
	case 3:
		return &parts[0], &parts[1], &parts[2], nil
	default:
		return nil, nil, nil, &errs.InvalidRelationNameError{Name: name, Reason: "expected at most three parts"}
	}
}

// splitName splits on the dots that are outside quotes. Quotes are kept.
func splitName(name string) ([]string, error) {
	var parts []string
	var quote rune
	start, partStart := 0, 0
	for i, c := range name {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '`':
			quote, partStart = c, i
		case c == '.':
			parts = append(parts, name[start:i])
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quoted part %s", name[partStart:])
	}
	return append(parts, name[start:]), nil
}

func unquote(part string) (string, error) {
	if part == "" {
		return "", fmt.Errorf("empty name part")
	}
	for _, q := range []byte{'"', '`'} {
		if part[0] == q {
			if len(part) < 2 || part[len(part)-1] != q {
				return "", fmt.Errorf("unterminated quoted part %s", part)
			}
			return part[1 : len(part)-1], nil
		}
	}
	return part, nil
}

func describeSearch(database, schema, identifier *string) string {
	parts := lo.FilterMap([]*string{database, schema, identifier}, func(p *string, _ int) (string, bool) {
		return lo.FromPtr(p), p != nil
	})
	return strings.Join(parts, ".")
}
