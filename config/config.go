// Package config loads application configuration from an optional YAML file
// and the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Tokenizer  TokenizerConfig  `yaml:"tokenizer"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
	Dump       DumpConfig       `yaml:"dump"`
}

// TokenizerConfig selects the tokenizer system dictionary.
type TokenizerConfig struct {
	Dict string `yaml:"dict" env:"TOKENIZER_DICT" env-default:"ipa"`
}

// DictionaryConfig points at the optional JMdict file backing the
// rule-chain deinflection strategy. Empty path disables that strategy.
type DictionaryConfig struct {
	JMdictPath string `yaml:"jmdict_path" env:"JMDICT_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DumpConfig holds the debug dump directory.
type DumpConfig struct {
	Dir string `yaml:"dir" env:"DUMP_DIR" env-default:"logs"`
}

// Load reads configuration from path when given, from the environment
// otherwise.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	return cfg, nil
}
