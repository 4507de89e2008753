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
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yugabyte/relcanon/src/config"
	"github.com/yugabyte/relcanon/src/utils"
)

var (
	cfgFile string
	logDir  string

	// projectConfig is loaded before every command runs.
	projectConfig = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "relcanon",
	Short: "Render, compare and resolve qualified database relation names",
	Long: `relcanon turns database/schema/identifier triples into the dotted, selectively quoted
names used in generated SQL, and detects references that only match when case is ignored.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		projectConfig = cfg
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		InitLogging(logDir, cmd.Use == "version", cmd.Name(), level)
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.ErrExit("ERROR: %s", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.relcanon.yaml)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"directory to write logs into; logging is disabled when empty")
	rootCmd.PersistentFlags().String("log-level", config.INFO,
		"log level for the log file (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().String("quote-char", `"`,
		"character used to quote relation parts")

	cobra.CheckErr(viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("quote_character", rootCmd.PersistentFlags().Lookup("quote-char")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search config in home directory with name ".relcanon" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".relcanon")
	}

	viper.SetEnvPrefix("RELCANON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
