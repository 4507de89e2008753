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
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yugabyte/relcanon/src/errs"
)

type recordingReporter struct {
	targets   []string
	relations []string
}

func (r *recordingReporter) ReportApproximateMatch(target, relation Relation) {
	r.targets = append(r.targets, target.String())
	r.relations = append(r.relations, relation.String())
}

func TestMatchesWith(t *testing.T) {
	engineUnquoted := newTestRelation("analytics", "raw", "orders").
		WithEngineCreated(true).
		Quote(nil, nil, lo.ToPtr(false))

	tests := []struct {
		name         string
		relation     Relation
		database     *string
		schema       *string
		identifier   *string
		expected     bool
		expectReport bool
	}{
		{
			name:         "identifier differs only by case",
			relation:     newTestRelation("", "", "foo"),
			identifier:   lo.ToPtr("Foo"),
			expected:     false,
			expectReport: true,
		},
		{
			name:       "identifier matches exactly",
			relation:   newTestRelation("", "", "foo"),
			identifier: lo.ToPtr("foo"),
			expected:   true,
		},
		{
			name:       "all parts match",
			relation:   newTestRelation("analytics", "raw", "orders"),
			database:   lo.ToPtr("analytics"),
			schema:     lo.ToPtr("raw"),
			identifier: lo.ToPtr("orders"),
			expected:   true,
		},
		{
			name:     "unrelated schema",
			relation: newTestRelation("analytics", "raw", "orders"),
			schema:   lo.ToPtr("staging"),
			expected: false,
		},
		{
			name:     "searching a part the relation lacks",
			relation: newTestRelation("", "raw", "orders"),
			database: lo.ToPtr("analytics"),
			expected: false,
		},
		{
			name:       "one part case-insensitive, another unrelated",
			relation:   newTestRelation("analytics", "raw", "orders"),
			schema:     lo.ToPtr("staging"),
			identifier: lo.ToPtr("ORDERS"),
			expected:   false,
		},
		{
			name:       "engine created and unquoted folds case",
			relation:   engineUnquoted,
			identifier: lo.ToPtr("ORDERS"),
			expected:   true,
		},
		{
			name:         "engine created but quoted part stays case sensitive",
			relation:     engineUnquoted,
			schema:       lo.ToPtr("RAW"),
			expected:     false,
			expectReport: true,
		},
		{
			name:         "unquoted but not engine created stays case sensitive",
			relation:     newTestRelation("", "", "orders").Quote(nil, nil, lo.ToPtr(false)),
			identifier:   lo.ToPtr("Orders"),
			expected:     false,
			expectReport: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			matched, err := tt.relation.MatchesWith(reporter, tt.database, tt.schema, tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matched)
			if tt.expectReport {
				assert.Len(t, reporter.targets, 1)
			} else {
				assert.Empty(t, reporter.targets)
			}
		})
	}
}

func TestMatchesWithReportsSearchAndRelation(t *testing.T) {
	reporter := &recordingReporter{}
	rel := newTestRelation("analytics", "raw", "orders")

	matched, err := rel.MatchesWith(reporter, nil, lo.ToPtr("RAW"), lo.ToPtr("orders"))
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, []string{`"RAW"."orders"`}, reporter.targets)
	assert.Equal(t, []string{`"analytics"."raw"."orders"`}, reporter.relations)
}

func TestMatchesWithoutSearch(t *testing.T) {
	rel := newTestRelation("analytics", "raw", "orders")

	_, err := rel.Matches(nil, nil, nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidSearchCriteria))

	_, err = rel.MatchesWith(nil, nil, nil, nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidSearchCriteria))
}

func TestMatchesUsesLogReporter(t *testing.T) {
	rel := newTestRelation("", "", "foo")

	matched, err := rel.Matches(nil, nil, lo.ToPtr("FOO"))
	require.NoError(t, err)
	assert.False(t, matched)

	// a nil reporter is allowed and only drops the report
	matched, err = rel.MatchesWith(nil, nil, nil, lo.ToPtr("FOO"))
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestReporterFunc(t *testing.T) {
	var calls int
	reporter := ReporterFunc(func(target, relation Relation) { calls++ })

	_, err := newTestRelation("", "", "foo").MatchesWith(reporter, nil, nil, lo.ToPtr("Foo"))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
