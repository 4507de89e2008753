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
package config

import (
	"strings"
	"unicode/utf8"

	goerrors "github.com/go-errors/errors"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/yugabyte/relcanon/src/descriptor"
)

const (
	TRACE = "trace"
	DEBUG = "debug"
	INFO  = "info"
	WARN  = "warn"
	ERROR = "error"
	FATAL = "fatal"
	PANIC = "panic"
)

var validLogLevels = []string{TRACE, DEBUG, INFO, WARN, ERROR, FATAL, PANIC}

// ProjectConfig is the project-wide rendering configuration.
type ProjectConfig struct {
	QuoteCharacter string             `mapstructure:"quote_character"`
	Quoting        descriptor.Quoting `mapstructure:"quoting"`
	LogLevel       string             `mapstructure:"log_level"`
}

func (c *ProjectConfig) QuotingConfig() descriptor.Quoting {
	return c.Quoting
}

func Default() *ProjectConfig {
	return &ProjectConfig{
		QuoteCharacter: `"`,
		LogLevel:       INFO,
	}
}

// Load reads the project configuration from v on top of the defaults.
func Load(v *viper.Viper) (*ProjectConfig, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, goerrors.Errorf("decode project config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ProjectConfig) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if utf8.RuneCountInString(c.QuoteCharacter) != 1 {
		return goerrors.Errorf("invalid quote character %q: expected a single character", c.QuoteCharacter)
	}
	return nil
}

func ValidateLogLevel(level string) error {
	if !lo.Contains(validLogLevels, strings.ToLower(level)) {
		return goerrors.Errorf("invalid log level: %s. Valid log levels = %v", level, validLogLevels)
	}
	return nil
}

func IsLogLevelDebugOrBelow(level string) bool {
	return lo.Contains([]string{TRACE, DEBUG}, strings.ToLower(level))
}
