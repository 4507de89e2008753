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
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yugabyte/relcanon/src/relation"
)

// Relation flags are read through Changed so that an unset flag stays nil
// instead of becoming "" or false.

func registerRelationFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("database", "", "database part of the relation")
	flags.String("schema", "", "schema part of the relation")
	flags.String("identifier", "", "identifier (table/view name) part of the relation")
	flags.String("type", "", fmt.Sprintf("relation type, one of %v", relation.RelationKinds))
	flags.Bool("engine-created", false, "the relation name was generated by the build engine")
	for _, key := range relation.ComponentNames {
		flags.Bool("quote-"+key.String(), true, fmt.Sprintf("quote the %s part", key))
		flags.Bool("include-"+key.String(), true, fmt.Sprintf("include the %s part", key))
	}
}

func optionalString(flags *pflag.FlagSet, name string) (*string, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	value, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func optionalBool(flags *pflag.FlagSet, name string) (*bool, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	value, err := flags.GetBool(name)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func optionalBools(flags *pflag.FlagSet, prefix string) (database, schema, identifier *bool, err error) {
	values := make([]*bool, len(relation.ComponentNames))
	for i, key := range relation.ComponentNames {
		values[i], err = optionalBool(flags, prefix+key.String())
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return values[0], values[1], values[2], nil
}

func optionalStrings(flags *pflag.FlagSet, prefix string) (database, schema, identifier *string, err error) {
	values := make([]*string, len(relation.ComponentNames))
	for i, key := range relation.ComponentNames {
		values[i], err = optionalString(flags, prefix+key.String())
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return values[0], values[1], values[2], nil
}

// relationFromFlags builds the relation described by the registerRelationFlags flags.
// Project quoting applies first, explicit --quote-* flags win over it.
func relationFromFlags(cmd *cobra.Command) (relation.Relation, error) {
	flags := cmd.Flags()
	database, schema, identifier, err := optionalStrings(flags, "")
	if err != nil {
		return relation.Relation{}, err
	}
	kind, err := flags.GetString("type")
	if err != nil {
		return relation.Relation{}, err
	}
	engineCreated, err := flags.GetBool("engine-created")
	if err != nil {
		return relation.Relation{}, err
	}

	rel, err := relation.Create(database, schema, identifier, relation.RelationKind(kind), map[string]any{
		"quote_character": projectConfig.QuoteCharacter,
		"quote_policy":    projectConfig.Quoting.ToMap(),
		"engine_created":  engineCreated,
	})
	if err != nil {
		return relation.Relation{}, err
	}

	quoteDatabase, quoteSchema, quoteIdentifier, err := optionalBools(flags, "quote-")
	if err != nil {
		return relation.Relation{}, err
	}
	includeDatabase, includeSchema, includeIdentifier, err := optionalBools(flags, "include-")
	if err != nil {
		return relation.Relation{}, err
	}
	return rel.Quote(quoteDatabase, quoteSchema, quoteIdentifier).
		Include(includeDatabase, includeSchema, includeIdentifier), nil
}
