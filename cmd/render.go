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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a relation as a dotted, selectively quoted name",
		Example: `  relcanon render --database analytics --schema raw --identifier orders
  relcanon render --database analytics --schema raw --identifier orders --quote-database=false
  relcanon render --database analytics --information-schema --info-table columns`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := relationFromFlags(cmd)
			if err != nil {
				return err
			}
			infoSchema, err := cmd.Flags().GetBool("information-schema")
			if err != nil {
				return err
			}
			if infoSchema {
				table, err := optionalString(cmd.Flags(), "info-table")
				if err != nil {
					return err
				}
				rel = rel.InformationSchema(table)
			}
			rendered, err := rel.Render()
			if err != nil {
				return err
			}
			log.Infof("rendered relation %s", rendered)
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	registerRelationFlags(cmd)
	cmd.Flags().Bool("information-schema", false, "render the information schema of the relation's database")
	cmd.Flags().String("info-table", "", "information schema table to render, used with --information-schema")
	return cmd
}

func init() {
	rootCmd.AddCommand(newRenderCmd())
}
