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

	"dario.cat/mergo"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/yugabyte/relcanon/src/descriptor"
	"github.com/yugabyte/relcanon/src/errs"
)

/*
Create builds a relation from its path parts and kind. overrides may set
quote_character, include_policy, quote_policy and engine_created; policy
entries left out keep their default. Keys other than these, or values of the
wrong shape, fail with a SchemaValidationError.
*/
func Create(database, schema, identifier *string, kind RelationKind, overrides map[string]any) (Relation, error) {
	fields := lo.Assign(overrides)
	fields[fieldPath] = NewPath(database, schema, identifier).ToMap()
	if kind != "" {
		fields[fieldType] = kind.String()
	} else {
		fields[fieldType] = nil
	}
	return fromMap(fields)
}

// Incorporate deep-merges overrides into the relation's fields and rebuilds it.
func (r Relation) Incorporate(overrides map[string]any) (Relation, error) {
	fields := r.ToMap()
	normalized, err := normalizeFields(overrides)
	if err != nil {
		return Relation{}, err
	}
	err = mergo.Merge(&fields, normalized, mergo.WithOverride)
	if err != nil {
		return Relation{}, errs.NewSchemaValidationError("", err)
	}
	return fromMap(fields)
}

// CreateFromSource uses the source's declared parts. Its quote policy is the
// default policy, overlaid with the source's quoting, overlaid with any
// quote_policy in overrides.
func CreateFromSource(source descriptor.Source, overrides map[string]any) (Relation, error) {
	kind, overrides, err := splitKind(overrides)
	if err != nil {
		return Relation{}, err
	}
	quotePolicy, err := mergeQuotePolicies(DefaultQuotePolicy().ToMap(), source.Quoting.ToMap(), overrides[fieldQuotePolicy])
	if err != nil {
		return Relation{}, err
	}
	overrides[fieldQuotePolicy] = quotePolicy

	log.Debugf("creating relation for %s with quote policy %v", source.UniqueName(), quotePolicy)
	return Create(source.Database, source.Schema, lo.ToPtr(source.Identifier), kind, overrides)
}

// CreateFromNode uses the node's database and schema and its alias as the
// identifier. Its quote policy is the ambient quoting overlaid with quotePolicy,
// overlaid with any quote_policy entry in overrides.
func CreateFromNode(config descriptor.HasQuoting, node descriptor.Node, quotePolicy map[string]any, overrides map[string]any) (Relation, error) {
	kind, overrides, err := splitKind(overrides)
	if err != nil {
		return Relation{}, err
	}
	var ambient map[string]any
	if config != nil {
		ambient = config.QuotingConfig().ToMap()
	}
	var override any
	if quotePolicy != nil {
		override = quotePolicy
	}
	merged, err := mergeQuotePolicies(ambient, override, overrides[fieldQuotePolicy])
	if err != nil {
		return Relation{}, err
	}
	overrides[fieldQuotePolicy] = merged

	log.Debugf("creating relation for %s with quote policy %v", node.UniqueName(), merged)
	return Create(node.Database, node.Schema, lo.ToPtr(node.Alias), kind, overrides)
}

// CreateFrom picks the construction path from the descriptor's resource kind:
// the source kind builds from a Source, any other kind from a Node. For nodes,
// a quote_policy entry in overrides is applied on top of config.
func CreateFrom(config descriptor.HasQuoting, d descriptor.Descriptor, overrides map[string]any) (Relation, error) {
	if d == nil {
		return Relation{}, errs.NewUnsupportedDescriptorError("", d)
	}
	if d.ResourceKind() == descriptor.ResourceSource {
		switch source := d.(type) {
		case descriptor.Source:
			return CreateFromSource(source, overrides)
		case *descriptor.Source:
			return CreateFromSource(*source, overrides)
		}
	} else {
		rest := lo.OmitByKeys(overrides, []string{fieldQuotePolicy})
		var quotePolicy map[string]any
		if value, ok := overrides[fieldQuotePolicy]; ok && value != nil {
			m, err := asMap(fieldQuotePolicy, value)
			if err != nil {
				return Relation{}, err
			}
			quotePolicy = m
		}
		switch node := d.(type) {
		case descriptor.Node:
			return CreateFromNode(config, node, quotePolicy, rest)
		case *descriptor.Node:
			return CreateFromNode(config, *node, quotePolicy, rest)
		}
	}
	return Relation{}, errs.NewUnsupportedDescriptorError(string(d.ResourceKind()), d)
}

// splitKind copies overrides and takes out the "type" entry.
func splitKind(overrides map[string]any) (RelationKind, map[string]any, error) {
	rest := lo.Assign(overrides)
	value, ok := rest[fieldType]
	if !ok || value == nil {
		delete(rest, fieldType)
		return "", rest, nil
	}
	delete(rest, fieldType)
	switch v := value.(type) {
	case RelationKind:
		return v, rest, nil
	case string:
		return RelationKind(v), rest, nil
	default:
		return "", nil, errs.NewSchemaValidationError(fieldType, fmt.Errorf("expected a string, got %T", value))
	}
}

// mergeQuotePolicies merges the layers in order, later entries winning.
func mergeQuotePolicies(base map[string]any, layers ...any) (map[string]any, error) {
	result := lo.Assign(base)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		m, err := asMap(fieldQuotePolicy, layer)
		if err != nil {
			return nil, err
		}
		err = mergo.Merge(&result, m, mergo.WithOverride)
		if err != nil {
			return nil, errs.NewSchemaValidationError(fieldQuotePolicy, err)
		}
	}
	return result, nil
}
