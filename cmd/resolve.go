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
	"io"

	"github.com/fatih/color"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yugabyte/relcanon/src/descriptor"
	"github.com/yugabyte/relcanon/src/registry"
	"github.com/yugabyte/relcanon/src/relation"
	"github.com/yugabyte/relcanon/src/utils"
)

type resolvedRelation struct {
	Name     string `yaml:"name"`
	Relation string `yaml:"relation"`
}

func newResolveCmd() *cobra.Command {
	var (
		manifestPath string
		lookups      []string
		strict       bool
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Build the relations declared in a manifest and look names up among them",
		Long: `Builds one relation per source and node in the manifest and prints them as YAML.
Every --lookup name is then resolved against those relations. Names that only match
when case is ignored are reported as warnings, or as errors with --strict.`,
		Example: `  relcanon resolve --manifest manifest.yaml
  relcanon resolve --manifest manifest.yaml --lookup raw.orders --lookup 'analytics.staging."Orders"' --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := descriptor.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), manifest.Summary())
			err = manifest.CheckVersion(utils.RELCANON_VERSION)
			if err != nil {
				return err
			}
			manifest.ResolveQuoting(projectConfig.Quoting)
			log.Infof("resolving with quoting %v", manifest.Quoting.ToMap())

			reg := registry.NewRegistry()
			reg.Strict = strict
			err = reg.RegisterDescriptors(manifest.Quoting, manifest.Descriptors())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = printRelations(out, reg)
			if err != nil {
				return err
			}
			for _, name := range lookups {
				result, err := reg.LookupName(name)
				if result != nil {
					for _, ambiguity := range result.Ambiguities {
						color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "WARNING: %s\n", ambiguity)
					}
				}
				if err != nil {
					return fmt.Errorf("lookup %q: %w", name, err)
				}
				descriptorName, _ := reg.DescriptorName(result.Relation)
				fmt.Fprintf(out, "%s -> %s (%s)\n", name, result.Relation, descriptorName)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "path to the manifest YAML file")
	cmd.Flags().StringArrayVar(&lookups, "lookup", nil, "dotted relation name to resolve; may be repeated")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail lookups that have case-only ambiguous matches")
	cobra.CheckErr(cmd.MarkFlagRequired("manifest"))
	return cmd
}

func printRelations(w io.Writer, reg *registry.Registry) error {
	resolved := lo.Map(reg.Relations(), func(rel relation.Relation, _ int) resolvedRelation {
		name, _ := reg.DescriptorName(rel)
		return resolvedRelation{Name: name, Relation: rel.String()}
	})
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(resolved); err != nil {
		return fmt.Errorf("write relations: %w", err)
	}
	return encoder.Close()
}

func init() {
	rootCmd.AddCommand(newResolveCmd())
}
