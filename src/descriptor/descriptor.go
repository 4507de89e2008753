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

// Package descriptor holds the read-only records that relations are built
// from: source definitions, graph nodes and the project quoting settings.
package descriptor

import "github.com/samber/lo"

type ResourceKind string

const (
	ResourceModel     ResourceKind = "model"
	ResourceSeed      ResourceKind = "seed"
	ResourceSnapshot  ResourceKind = "snapshot"
	ResourceTest      ResourceKind = "test"
	ResourceAnalysis  ResourceKind = "analysis"
	ResourceOperation ResourceKind = "operation"
	ResourceSource    ResourceKind = "source"
)

var NodeResourceKinds = []ResourceKind{
	ResourceModel, ResourceSeed, ResourceSnapshot, ResourceTest, ResourceAnalysis, ResourceOperation,
}

func (k ResourceKind) IsNode() bool {
	return lo.Contains(NodeResourceKinds, k)
}

// Descriptor is implemented by Source and Node only. ResourceKind is the
// discriminant used to pick the construction path.
type Descriptor interface {
	ResourceKind() ResourceKind
	UniqueName() string
	isDescriptor()
}

// Quoting is a sparse quoting configuration; nil entries are unset.
type Quoting struct {
	Database   *bool `yaml:"database,omitempty" mapstructure:"database"`
	Schema     *bool `yaml:"schema,omitempty" mapstructure:"schema"`
	Identifier *bool `yaml:"identifier,omitempty" mapstructure:"identifier"`
}

// ToMap returns only the entries that are set.
func (q Quoting) ToMap() map[string]any {
	result := map[string]any{}
	for key, value := range map[string]*bool{
		"database":   q.Database,
		"schema":     q.Schema,
		"identifier": q.Identifier,
	} {
		if value != nil {
			result[key] = *value
		}
	}
	return result
}

// HasQuoting is the ambient configuration consulted when building node relations.
type HasQuoting interface {
	QuotingConfig() Quoting
}

func (q Quoting) QuotingConfig() Quoting {
	return q
}

// Merge returns q with every entry that is set in other replaced by other's value.
func (q Quoting) Merge(other Quoting) Quoting {
	q.Database, _ = lo.Coalesce(other.Database, q.Database)
	q.Schema, _ = lo.Coalesce(other.Schema, q.Schema)
	q.Identifier, _ = lo.Coalesce(other.Identifier, q.Identifier)
	return q
}

// Source is a declared external table.
type Source struct {
	SourceName string  `yaml:"source_name"`
	Name       string  `yaml:"name"`
	Database   *string `yaml:"database,omitempty"`
	Schema     *string `yaml:"schema,omitempty"`
	// Identifier defaults to Name when the manifest leaves it out.
	Identifier string  `yaml:"identifier,omitempty"`
	Quoting    Quoting `yaml:"quoting,omitempty"`
}

func (Source) ResourceKind() ResourceKind {
	return ResourceSource
}

func (s Source) UniqueName() string {
	return string(ResourceSource) + "." + s.SourceName + "." + s.Name
}

func (Source) isDescriptor() {}

// Node is a model, seed, snapshot or other graph node built by the engine.
type Node struct {
	Name     string       `yaml:"name"`
	Kind     ResourceKind `yaml:"resource_type"`
	Database *string      `yaml:"database,omitempty"`
	Schema   *string      `yaml:"schema,omitempty"`
	// Alias is the name of the relation in the database; defaults to Name.
	Alias string `yaml:"alias,omitempty"`
}

func (n Node) ResourceKind() ResourceKind {
	return n.Kind
}

func (n Node) UniqueName() string {
	return string(n.Kind) + "." + n.Name
}

func (Node) isDescriptor() {}
