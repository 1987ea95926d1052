package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RegisterFlags adds the --level, --file and --config flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("level", "l", DefaultLevel, "minimum level to write (fatal, error, warn, info, debug, trace)")
	fs.StringP("file", "f", "", "write records to this file instead of standard output (UTC timestamps)")
	fs.StringP("config", "c", "", "optional config file (yaml, json, toml)")
}

// Load resolves the settings. Sources, lowest precedence first: defaults,
// the --config file, variables from envFiles (".env" when none are given;
// missing files are skipped; they never override variables already set),
// NANOLOG_* environment variables, then flags set on fs.
// fs must already be parsed and have the flags from RegisterFlags.
func Load(fs *pflag.FlagSet, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading env file %s: %w", path, err)
		}
	}

	v := viper.New()
	v.SetDefault("level", DefaultLevel)
	v.SetDefault("file", "")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path, err := fs.GetString("config"); err != nil {
		return nil, fmt.Errorf("reading --config flag: %w", err)
	} else if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	for _, key := range []string{"level", "file"} {
		flag := fs.Lookup(key)
		if flag == nil {
			return nil, fmt.Errorf("flag --%s is not registered", key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("binding flag --%s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
