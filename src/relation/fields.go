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
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"

	"github.com/yugabyte/relcanon/src/errs"
)

const (
	fieldType           = "type"
	fieldPath           = "path"
	fieldQuoteCharacter = "quote_character"
	fieldIncludePolicy  = "include_policy"
	fieldQuotePolicy    = "quote_policy"
	fieldEngineCreated  = "engine_created"
)

// relationFields is the decoding target for field maps. Keys missing from a
// map keep the defaults set by defaultFields.
type relationFields struct {
	Type           RelationKind `mapstructure:"type"`
	Path           Path         `mapstructure:"path"`
	QuoteCharacter string       `mapstructure:"quote_character"`
	IncludePolicy  Policy       `mapstructure:"include_policy"`
	QuotePolicy    Policy       `mapstructure:"quote_policy"`
	EngineCreated  bool         `mapstructure:"engine_created"`
}

func defaultFields() relationFields {
	return relationFields{
		QuoteCharacter: DefaultQuoteCharacter,
		IncludePolicy:  DefaultIncludePolicy(),
		QuotePolicy:    DefaultQuotePolicy(),
	}
}

// fromMap validates a field map and builds the relation it describes.
func fromMap(fields map[string]any) (Relation, error) {
	normalized, err := normalizeFields(fields)
	if err != nil {
		return Relation{}, err
	}

	result := defaultFields()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &result,
	})
	if err != nil {
		return Relation{}, fmt.Errorf("create relation decoder: %w", err)
	}
	if err := decoder.Decode(normalized); err != nil {
		return Relation{}, errs.NewSchemaValidationError("", err)
	}

	if !result.Type.IsValid() {
		return Relation{}, errs.NewSchemaValidationError(fieldType,
			fmt.Errorf("unknown relation type %q, expected one of %v", result.Type, RelationKinds))
	}
	if err := validateQuoteCharacter(result.QuoteCharacter); err != nil {
		return Relation{}, err
	}

	return Relation{
		kind:           result.Type,
		path:           result.Path,
		quoteCharacter: result.QuoteCharacter,
		includePolicy:  result.IncludePolicy,
		quotePolicy:    result.QuotePolicy,
		engineCreated:  result.EngineCreated,
	}, nil
}

func validateQuoteCharacter(quoteCharacter string) error {
	if utf8.RuneCountInString(quoteCharacter) != 1 {
		return errs.NewSchemaValidationError(fieldQuoteCharacter,
			fmt.Errorf("expected a single character, got %q", quoteCharacter))
	}
	return nil
}

// normalizeFields copies fields, turning Path and Policy values into plain
// maps so that maps and structs can be merged and decoded alike.
func normalizeFields(fields map[string]any) (map[string]any, error) {
	result := make(map[string]any, len(fields))
	for key, value := range fields {
		switch key {
		case fieldPath, fieldIncludePolicy, fieldQuotePolicy:
			if value == nil {
				continue
			}
			m, err := asMap(key, value)
			if err != nil {
				return nil, err
			}
			result[key] = m
		case fieldType:
			if kind, ok := value.(RelationKind); ok {
				value = kind.String()
			}
			result[key] = value
		default:
			result[key] = value
		}
	}
	return result, nil
}

func asMap(field string, value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, item := range v {
			result[key] = item
		}
		return result, nil
	case map[string]bool:
		result := make(map[string]any, len(v))
		for key, item := range v {
			result[key] = item
		}
		return result, nil
	case map[string]*string:
		result := make(map[string]any, len(v))
		for key, item := range v {
			if item == nil {
				result[key] = nil
			} else {
				result[key] = *item
			}
		}
		return result, nil
	case map[ComponentName]bool:
		result := make(map[string]any, len(v))
		for key, item := range v {
			result[key.String()] = item
		}
		return result, nil
	case Policy:
		return v.ToMap(), nil
	case Path:
		return v.ToMap(), nil
	default:
		return nil, errs.NewSchemaValidationError(field, fmt.Errorf("expected a mapping, got %T", value))
	}
}
