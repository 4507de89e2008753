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
	"strings"

	goerrors "github.com/go-errors/errors"
	log "github.com/sirupsen/logrus"

	"github.com/yugabyte/relcanon/src/errs"
)

// Reporter receives ambiguous matches: target was built from the search and
// approximately, but not exactly, matches relation.
type Reporter interface {
	ReportApproximateMatch(target, relation Relation)
}

type ReporterFunc func(target, relation Relation)

func (f ReporterFunc) ReportApproximateMatch(target, relation Relation) {
	f(target, relation)
}

// LogReporter logs ambiguous matches as warnings.
type LogReporter struct{}

func (LogReporter) ReportApproximateMatch(target, relation Relation) {
	log.Warn(errs.NewAmbiguousMatchError(target.String(), relation.String()).Error())
}

// Matches reports ambiguous matches to a LogReporter. See MatchesWith.
func (r Relation) Matches(database, schema, identifier *string) (bool, error) {
	return r.MatchesWith(LogReporter{}, database, schema, identifier)
}

/*
MatchesWith compares the supplied (non-nil) search parts against the path.

Every part is compared twice. The approximate comparison ignores case. The
exact comparison is case sensitive, except for parts that the engine created
and will not quote: the database folds those itself, so case is ignored.

If the search matches approximately but not exactly, the relation built from
the search is handed to reporter together with r. The result is the exact match.
*/
func (r Relation) MatchesWith(reporter Reporter, database, schema, identifier *string) (bool, error) {
	search := map[ComponentName]*string{
		ComponentDatabase:   database,
		ComponentSchema:     schema,
		ComponentIdentifier: identifier,
	}
	exactMatch := true
	approximateMatch := true
	searched := false
	for _, key := range ComponentNames {
		value := search[key]
		if value == nil {
			continue
		}
		searched = true
		if !r.isExactishMatch(key, *value) {
			exactMatch = false
		}
		if !equalPtr(r.path.GetLowered(key), strings.ToLower(*value)) {
			approximateMatch = false
		}
	}
	if !searched {
		return false, goerrors.Wrap(errs.ErrInvalidSearchCriteria, 0)
	}

	if approximateMatch && !exactMatch && reporter != nil {
		target := New(NewPath(database, schema, identifier), "")
		reporter.ReportApproximateMatch(target, r)
	}
	return exactMatch, nil
}

func (r Relation) isExactishMatch(key ComponentName, value string) bool {
	if r.engineCreated && !r.quotePolicy.Get(key) {
		return equalPtr(r.path.GetLowered(key), strings.ToLower(value))
	}
	return equalPtr(r.path.Get(key), value)
}

func equalPtr(part *string, value string) bool {
	return part != nil && *part == value
}
