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

import "github.com/samber/lo"

// RelationKind is the kind of database object a relation points at.
// The zero value means the kind is unknown.
type RelationKind string

const (
	Table            RelationKind = "table"
	View             RelationKind = "view"
	CTE              RelationKind = "cte"
	MaterializedView RelationKind = "materializedview"
	External         RelationKind = "external"
)

var RelationKinds = []RelationKind{Table, View, CTE, MaterializedView, External}

func (k RelationKind) String() string {
	return string(k)
}

func (k RelationKind) IsValid() bool {
	return k == "" || lo.Contains(RelationKinds, k)
}
