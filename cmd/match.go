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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yugabyte/relcanon/src/errs"
	"github.com/yugabyte/relcanon/src/relation"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Check whether a relation matches a search path",
		Long: `Prints true when the relation exactly matches every supplied --search-* part.
A match that only holds when case is ignored prints false and a warning.`,
		Example: `  relcanon match --schema raw --identifier orders --search-identifier ORDERS
  relcanon match --schema raw --identifier orders --quote-identifier=false --engine-created --search-identifier ORDERS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := relationFromFlags(cmd)
			if err != nil {
				return err
			}
			database, schema, identifier, err := optionalStrings(cmd.Flags(), "search-")
			if err != nil {
				return err
			}
			matched, err := rel.MatchesWith(warningReporter(cmd.ErrOrStderr()), database, schema, identifier)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), matched)
			return nil
		},
	}
	registerRelationFlags(cmd)
	for _, key := range relation.ComponentNames {
		cmd.Flags().String("search-"+key.String(), "", fmt.Sprintf("%s part to search for", key))
	}
	return cmd
}

// warningReporter logs ambiguous matches and prints them in yellow.
func warningReporter(w io.Writer) relation.Reporter {
	return relation.ReporterFunc(func(target, rel relation.Relation) {
		err := errs.NewAmbiguousMatchError(target.String(), rel.String())
		log.Warn(err.Error())
		color.New(color.FgYellow).Fprintf(w, "WARNING: %s\n", err)
	})
}

func init() {
	rootCmd.AddCommand(newMatchCmd())
}
