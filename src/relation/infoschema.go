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

const InformationSchemaName = "information_schema"

// InformationSchema points the relation at the information schema of its
// database. The database part stays included only if the relation has one,
// and the identifier part is included only if identifier is non-nil.
// Information schema names are never quoted.
func (r Relation) InformationSchema(identifier *string) Relation {
	includePolicy := r.includePolicy.WithOverrides(map[ComponentName]bool{
		ComponentDatabase:   r.Database() != nil,
		ComponentSchema:     true,
		ComponentIdentifier: identifier != nil,
	})
	quotePolicy := r.quotePolicy.WithOverrides(map[ComponentName]bool{
		ComponentSchema:     false,
		ComponentIdentifier: false,
	})
	path := r.path.WithOverrides(map[ComponentName]*string{
		ComponentSchema:     lo.ToPtr(InformationSchemaName),
		ComponentIdentifier: identifier,
	})
	return r.WithIncludePolicy(includePolicy).
		WithQuotePolicy(quotePolicy).
		WithPath(path)
}

func (r Relation) InformationSchemaOnly() Relation {
	return r.InformationSchema(nil)
}

func (r Relation) InformationSchemaTable(identifier string) Relation {
	return r.InformationSchema(&identifier)
}
