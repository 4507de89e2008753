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
package descriptor

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
quoting:
  database: false
sources:
  - source_name: raw
    name: orders
    database: analytics
    schema: raw
  - source_name: raw
    name: customers
    schema: raw
    identifier: CUSTOMERS
    quoting:
      identifier: false
nodes:
  - name: stg_orders
    schema: staging
    alias: orders
  - name: country_codes
    resource_type: seed
    schema: seeds
`

func TestParseManifest(t *testing.T) {
	assert := assert.New(t)

	manifest, err := ParseManifest([]byte(testManifest))
	require.NoError(t, err)

	assert.Equal(Quoting{Database: lo.ToPtr(false)}, manifest.Quoting)
	require.Len(t, manifest.Sources, 2)
	require.Len(t, manifest.Nodes, 2)

	orders := manifest.Sources[0]
	assert.Equal("orders", orders.Identifier)
	assert.Equal("analytics", *orders.Database)
	assert.Equal("source.raw.orders", orders.UniqueName())
	assert.Equal(ResourceSource, orders.ResourceKind())

	customers := manifest.Sources[1]
	assert.Nil(customers.Database)
	assert.Equal("CUSTOMERS", customers.Identifier)
	assert.Equal(map[string]any{"identifier": false}, customers.Quoting.ToMap())

	stgOrders := manifest.Nodes[0]
	assert.Equal(ResourceModel, stgOrders.ResourceKind())
	assert.Equal("orders", stgOrders.Alias)
	assert.Equal("model.stg_orders", stgOrders.UniqueName())

	seed := manifest.Nodes[1]
	assert.Equal(ResourceSeed, seed.Kind)
	assert.Equal("country_codes", seed.Alias)

	descriptors := manifest.Descriptors()
	assert.Equal([]string{"source.raw.orders", "source.raw.customers", "model.stg_orders", "seed.country_codes"},
		lo.Map(descriptors, func(d Descriptor, _ int) string { return d.UniqueName() }))
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		errMsg   string
	}{
		{
			name:     "unknown field",
			manifest: "sources:\n  - name: orders\n    table: orders\n",
			errMsg:   "field table not found",
		},
		{
			name:     "source without name",
			manifest: "sources:\n  - source_name: raw\n",
			errMsg:   "source #1: name is required",
		},
		{
			name:     "node without name",
			manifest: "nodes:\n  - alias: orders\n",
			errMsg:   "node #1: name is required",
		},
		{
			name:     "source listed as node",
			manifest: "nodes:\n  - name: orders\n    resource_type: source\n",
			errMsg:   `unsupported resource_type "source"`,
		},
		{
			name:     "not yaml",
			manifest: "sources: [",
			errMsg:   "parse manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.manifest))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestParseEmptyManifest(t *testing.T) {
	manifest, err := ParseManifest(nil)
	require.NoError(t, err)
	assert.Empty(t, manifest.Descriptors())
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0644))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Len(t, manifest.Descriptors(), 4)
	assert.Equal(t, len(testManifest), manifest.Size)
	assert.Equal(t, fmt.Sprintf("Loaded manifest %q (%d B): %d sources, %d nodes",
		path, len(testManifest), len(manifest.Sources), len(manifest.Nodes)), manifest.Summary())

	big := &Manifest{Path: "big.yaml", Size: 2_500_000}
	assert.Equal(t, `Loaded manifest "big.yaml" (2.5 MB): 0 sources, 0 nodes`, big.Summary())

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read manifest")
}

func TestQuotingMerge(t *testing.T) {
	assert := assert.New(t)
	base := Quoting{Database: lo.ToPtr(true), Schema: lo.ToPtr(true)}
	override := Quoting{Schema: lo.ToPtr(false), Identifier: lo.ToPtr(false)}

	merged := base.Merge(override)
	assert.Equal(map[string]any{"database": true, "schema": false, "identifier": false}, merged.ToMap())
	assert.Equal(map[string]any{"database": true, "schema": true}, base.ToMap())
	assert.Equal(base, base.Merge(Quoting{}))
	assert.Equal(merged, merged.QuotingConfig())
}

func TestResourceKindIsNode(t *testing.T) {
	for _, kind := range NodeResourceKinds {
		assert.True(t, kind.IsNode(), kind)
	}
	assert.False(t, ResourceSource.IsNode())
	assert.False(t, ResourceKind("exposure").IsNode())
}

func TestResolveQuoting(t *testing.T) {
	assert := assert.New(t)
	manifest, err := ParseManifest([]byte(testManifest))
	require.NoError(t, err)

	manifest.ResolveQuoting(Quoting{Database: lo.ToPtr(true), Schema: lo.ToPtr(false)})
	assert.Equal(map[string]any{"database": false, "schema": false}, manifest.Quoting.ToMap())
	assert.Equal(map[string]any{"database": false, "schema": false}, manifest.Sources[0].Quoting.ToMap())
	assert.Equal(map[string]any{"database": false, "schema": false, "identifier": false}, manifest.Sources[1].Quoting.ToMap())
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		errMsg  string
	}{
		{version: ""},
		{version: "0.3.0"},
		{version: "0.2.7"},
		{version: "0.3"},
		{version: "0.4.0", errMsg: "manifest version 0.4.0 is not supported by relcanon 0.3.0"},
		{version: "1.0.0", errMsg: "manifest version 1.0.0 is not supported"},
		{version: "latest", errMsg: `invalid manifest version "latest"`},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			manifest := &Manifest{Version: tt.version}
			err := manifest.CheckVersion("0.3.0")
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.errMsg)
			}
		})
	}
}

func TestParseManifestVersion(t *testing.T) {
	manifest, err := ParseManifest([]byte("version: 0.3.0\nnodes:\n  - name: orders\n"))
	require.NoError(t, err)
	assert.Equal(t, "0.3.0", manifest.Version)
	assert.NoError(t, manifest.CheckVersion("0.3.0"))
}
