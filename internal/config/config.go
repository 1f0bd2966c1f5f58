// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package config loads the TOML configuration of the rlx command.
//
//	required_version = "0.1.0"
//
//	[output]
//	format = "text"   # text, json, yaml or xml
//	color  = true
//
//	[tokens]
//	lexicon = "rules" # rules or script
//
//	[repl]
//	prompt       = "> "
//	exit_command = ":e"
//
//	[log]
//	level = "info"
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golangee/rlx/encoder"
	"golang.org/x/mod/semver"
)

// EnvConfig names the environment variable which points to a configuration file.
const EnvConfig = "RLX_CONFIG"

// Lexicon names accepted by [tokens] lexicon.
const (
	LexiconRules  = "rules"
	LexiconScript = "script"
)

var (
	// ErrInvalid is wrapped by all validation failures.
	ErrInvalid = errors.New("invalid configuration")
	// ErrVersion is returned by CheckVersion if the binary is older than required.
	ErrVersion = errors.New("version requirement not met")
)

// Config is the root of the configuration file.
type Config struct {
	// RequiredVersion is the minimal rlx version which may read this file, e.g. "0.2.0".
	RequiredVersion string       `toml:"required_version"`
	Output          OutputConfig `toml:"output"`
	Tokens          TokensConfig `toml:"tokens"`
	REPL            REPLConfig   `toml:"repl"`
	Log             LogConfig    `toml:"log"`
}

// OutputConfig selects the rendering of parse results.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// TokensConfig configures the tokens command.
type TokensConfig struct {
	Lexicon string `toml:"lexicon"`
}

// REPLConfig configures the interactive loop.
type REPLConfig struct {
	Prompt      string `toml:"prompt"`
	ExitCommand string `toml:"exit_command"`
}

// LogConfig configures the diagnostic log on stderr.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads the TOML file at path over the defaults. Environment variables in
// path are expanded. The result is validated.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Locate returns the configuration file to use if none was given explicitly:
// the file named by RLX_CONFIG, ./rlx.toml or ~/.config/rlx/config.toml.
// It returns the empty string if none of them exists.
func Locate() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}

	candidates := []string{"./rlx.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "rlx", "config.toml"))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyDefaults fills values which are missing or explicitly empty.
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = string(encoder.Text)
	}

	if c.Tokens.Lexicon == "" {
		c.Tokens.Lexicon = LexiconRules
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}

	if c.REPL.ExitCommand == "" {
		c.REPL.ExitCommand = ":e"
	}

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks all enumerated values.
func (c *Config) Validate() error {
	if _, err := encoder.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %v", ErrInvalid, err)
	}

	switch strings.ToLower(c.Tokens.Lexicon) {
	case LexiconRules, LexiconScript:
	default:
		return fmt.Errorf("%w: tokens.lexicon: unknown lexicon %q, expected %s or %s", ErrInvalid, c.Tokens.Lexicon, LexiconRules, LexiconScript)
	}

	if strings.TrimSpace(c.REPL.ExitCommand) == "" {
		return fmt.Errorf("%w: repl.exit_command must not be blank", ErrInvalid)
	}

	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	if c.RequiredVersion != "" && !semver.IsValid(canonical(c.RequiredVersion)) {
		return fmt.Errorf("%w: required_version: %q is not a semantic version", ErrInvalid, c.RequiredVersion)
	}

	return nil
}

// LogLevel returns the parsed [log] level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))

	return level, err
}

// CheckVersion fails with ErrVersion if version is older than RequiredVersion.
// The leading "v" is optional in both values.
func (c *Config) CheckVersion(version string) error {
	if c.RequiredVersion == "" {
		return nil
	}

	have := canonical(version)
	if !semver.IsValid(have) {
		return fmt.Errorf("invalid binary version %q", version)
	}

	want := canonical(c.RequiredVersion)
	if semver.Compare(have, want) < 0 {
		return fmt.Errorf("%w: configuration requires rlx %s, this is %s", ErrVersion, want, have)
	}

	return nil
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	return v
}
