//go:build unit

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
	"errors"
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/yugabyte/relcanon/src/errs"
)

func TestEqualityUsesRenderedForm(t *testing.T) {
	assert := assert.New(t)

	hidden := newTestRelation("analytics", "raw", "orders").Include(lo.ToPtr(false), nil, nil)
	absent := newTestRelation("", "raw", "orders")
	assert.True(hidden.Equal(absent))
	assert.Equal(hidden.Hash(), absent.Hash())
	assert.Equal(hidden.Key(), absent.Key())

	// same parts, different quoting
	unquoted := absent.Quote(nil, lo.ToPtr(false), nil)
	assert.False(absent.Equal(unquoted))

	// same rendering from different kinds
	assert.True(absent.WithKind(Table).Equal(absent.WithKind(View)))
}

func TestEqualityOfUnrenderableRelations(t *testing.T) {
	assert := assert.New(t)
	none := lo.ToPtr(false)

	a := newTestRelation("analytics", "raw", "orders").Include(none, none, none)
	b := newTestRelation("analytics", "raw", "orders").Include(none, none, none)
	c := newTestRelation("analytics", "raw", "invoices").Include(none, none, none)

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
	assert.False(a.Equal(newTestRelation("", "", "orders")))
	assert.Equal(a.Hash(), c.Hash())
}

func TestStringForms(t *testing.T) {
	rel := newTestRelation("", "raw", "orders")
	assert.Equal(t, `"raw"."orders"`, rel.String())
	assert.Equal(t, `"raw"."orders"`, fmt.Sprint(rel))
	assert.Equal(t, `<Relation "raw"."orders">`, fmt.Sprintf("%#v", rel))
}

func TestWithMethodsReturnCopies(t *testing.T) {
	assert := assert.New(t)
	rel := newTestRelation("analytics", "raw", "orders")

	_ = mustQuoteCharacter(rel, "'").
		WithKind(CTE).
		WithEngineCreated(true).
		WithIncludePolicy(NewPolicy(false, false, true)).
		WithQuotePolicy(NewPolicy(false, false, false)).
		WithPath(NewPath(nil, nil, lo.ToPtr("x"))).
		Quote(lo.ToPtr(true), nil, nil).
		Include(lo.ToPtr(true), nil, nil)

	assert.Equal(RelationKind(""), rel.Kind())
	assert.Equal(DefaultQuoteCharacter, rel.QuoteCharacter())
	assert.False(rel.EngineCreated())
	assert.Equal(DefaultIncludePolicy(), rel.IncludePolicy())
	assert.Equal(DefaultQuotePolicy(), rel.QuotePolicy())
	assert.Equal(`"analytics"."raw"."orders"`, rel.String())
}

func TestRelationKinds(t *testing.T) {
	assert := assert.New(t)
	for _, kind := range RelationKinds {
		assert.True(kind.IsValid(), kind)
	}
	assert.True(RelationKind("").IsValid())
	assert.False(RelationKind("Table").IsValid())

	rel := newTestRelation("", "", "orders")
	assert.True(rel.WithKind(CTE).IsCTE())
	assert.True(rel.WithKind(MaterializedView).IsMaterializedView())
	assert.False(rel.WithKind(External).IsView())
}

func TestToMap(t *testing.T) {
	rel := newTestRelation("", "raw", "orders").WithKind(View)
	assert.Equal(t, map[string]any{
		"type":            "view",
		"path":            map[string]any{"database": nil, "schema": "raw", "identifier": "orders"},
		"quote_character": `"`,
		"include_policy":  map[string]any{"database": true, "schema": true, "identifier": true},
		"quote_policy":    map[string]any{"database": true, "schema": true, "identifier": true},
		"engine_created":  false,
	}, rel.ToMap())
}

func TestPathPartsAreCopied(t *testing.T) {
	assert := assert.New(t)

	database := "analytics"
	rel, err := Create(&database, lo.ToPtr("raw"), lo.ToPtr("orders"), Table, nil)
	assert.NoError(err)
	unquoted := rel.Quote(lo.ToPtr(false), nil, nil)
	key, hash := rel.Key(), rel.Hash()

	database = "changed"
	*rel.Database() = "changed"
	*rel.Schema() = "changed"
	*rel.Identifier() = "changed"
	*rel.Table() = "changed"
	*rel.Name() = "changed"
	*rel.Path().Database = "changed"

	assert.Equal(key, rel.Key())
	assert.Equal(hash, rel.Hash())
	assert.Equal(`analytics."raw"."orders"`, unquoted.String())
}

func TestNewPathCopiesParts(t *testing.T) {
	assert := assert.New(t)

	schema := "raw"
	path := NewPath(nil, &schema, lo.ToPtr("orders"))
	rel := New(path, Table)
	withPath := newTestRelation("", "", "x").WithPath(path)
	info := rel.InformationSchema(&schema)

	schema = "changed"
	*path.Identifier = "changed"

	assert.Equal(`"raw"."orders"`, rel.String())
	assert.Equal(`"raw"."orders"`, withPath.String())
	assert.Equal(`information_schema.raw`, info.String())

	overridden := path.WithOverrides(map[ComponentName]*string{ComponentSchema: &schema})
	schema = "changed again"
	assert.Equal("changed", *overridden.Schema)
}

func TestWithQuoteCharacter(t *testing.T) {
	rel := newTestRelation("", "raw", "orders")

	updated, err := rel.WithQuoteCharacter("`")
	assert.NoError(t, err)
	assert.Equal(t, "`raw`.`orders`", updated.String())

	for _, quoteCharacter := range []string{"", "``", "ab"} {
		_, err := rel.WithQuoteCharacter(quoteCharacter)
		var validationErr *errs.SchemaValidationError
		if assert.True(t, errors.As(err, &validationErr), quoteCharacter) {
			assert.Equal(t, "quote_character", validationErr.Field())
		}
	}
	assert.Equal(t, DefaultQuoteCharacter, rel.QuoteCharacter())
}
