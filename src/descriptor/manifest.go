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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	goerrors "github.com/go-errors/errors"
	"github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Manifest is a YAML file listing sources and nodes:
//
//	version: 0.3.0
//	quoting:
//	  database: false
//	sources:
//	  - source_name: raw
//	    name: orders
//	    schema: raw
//	nodes:
//	  - name: stg_orders
//	    resource_type: model
//	    schema: staging
//	    alias: orders
type Manifest struct {
	// Version is the relcanon version the manifest was written for.
	Version string   `yaml:"version,omitempty"`
	Quoting Quoting  `yaml:"quoting,omitempty"`
	Sources []Source `yaml:"sources,omitempty"`
	Nodes   []Node   `yaml:"nodes,omitempty"`

	// Path and Size are set by LoadManifest.
	Path string `yaml:"-"`
	Size int    `yaml:"-"`
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerrors.Errorf("read manifest %q: %w", path, err)
	}
	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	manifest.Path, manifest.Size = path, len(data)
	log.Info(manifest.Summary())
	log.Debugf("Parsed manifest: %v", spew.Sdump(manifest))
	return manifest, nil
}

// Summary is the one-line description printed when a manifest is loaded.
func (m *Manifest) Summary() string {
	return fmt.Sprintf("Loaded manifest %q (%s): %d sources, %d nodes",
		m.Path, humanize.Bytes(uint64(m.Size)), len(m.Sources), len(m.Nodes))
}

// ParseManifest decodes data strictly: unknown keys are errors. Missing source
// identifiers and node aliases default to the declared name.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(&manifest)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerrors.Errorf("parse manifest: %w", err)
	}

	for i := range manifest.Sources {
		source := &manifest.Sources[i]
		if source.Name == "" {
			return nil, goerrors.Errorf("source #%d: name is required", i+1)
		}
		if source.Identifier == "" {
			source.Identifier = source.Name
		}
	}
	for i := range manifest.Nodes {
		node := &manifest.Nodes[i]
		if node.Name == "" {
			return nil, goerrors.Errorf("node #%d: name is required", i+1)
		}
		if node.Kind == "" {
			node.Kind = ResourceModel
		}
		if !node.Kind.IsNode() {
			return nil, goerrors.Errorf("node %q: unsupported resource_type %q", node.Name, node.Kind)
		}
		if node.Alias == "" {
			node.Alias = node.Name
		}
	}
	return &manifest, nil
}

// CheckVersion fails when the manifest was written for a newer release or a
// different major version than toolVersion. Manifests without a version pass.
func (m *Manifest) CheckVersion(toolVersion string) error {
	if m.Version == "" {
		return nil
	}
	manifestVersion, err := version.NewVersion(m.Version)
	if err != nil {
		return goerrors.Errorf("invalid manifest version %q: %w", m.Version, err)
	}
	current, err := version.NewVersion(toolVersion)
	if err != nil {
		return goerrors.Errorf("invalid relcanon version %q: %w", toolVersion, err)
	}
	if manifestVersion.Segments()[0] != current.Segments()[0] || manifestVersion.GreaterThan(current) {
		return goerrors.Errorf("manifest version %s is not supported by relcanon %s", m.Version, toolVersion)
	}
	return nil
}

// ResolveQuoting layers the manifest quoting over project and then each
// source's own quoting over the result. Nodes read the manifest quoting at
// build time and are left alone.
func (m *Manifest) ResolveQuoting(project Quoting) {
	m.Quoting = project.Merge(m.Quoting)
	for i := range m.Sources {
		m.Sources[i].Quoting = m.Quoting.Merge(m.Sources[i].Quoting)
	}
}

// Descriptors returns the sources followed by the nodes, in file order.
func (m *Manifest) Descriptors() []Descriptor {
	result := make([]Descriptor, 0, len(m.Sources)+len(m.Nodes))
	for _, source := range m.Sources {
		result = append(result, source)
	}
	for _, node := range m.Nodes {
		result = append(result, node)
	}
	return result
}
