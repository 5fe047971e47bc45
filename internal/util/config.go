package util

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/DaanHessen/morse-tui/internal/morse"
)

// Config holds process-level settings and flags. Per-call codec settings are
// derived from it via Codec and may still be overridden per command.
type Config struct {
	Theme        string `env:"MORSE_THEME" env-default:"catppuccin"`
	Policy       string `env:"MORSE_UNKNOWN" env-default:"error"`
	Replacement  string `env:"MORSE_REPLACEMENT" env-default:"?"`
	PreserveCase bool   `env:"MORSE_PRESERVE_CASE" env-default:"false"`
	LetterDelim  string `env:"MORSE_LETTER_DELIM" env-default:" "`
	WordDelim    string `env:"MORSE_WORD_DELIM" env-default:" / "`
}

// Load reads settings from the environment with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	if !morse.UnknownPolicy(cfg.Policy).Valid() {
		return Config{}, fmt.Errorf("config: unknown policy %q (want error|ignore|replace)", cfg.Policy)
	}
	return cfg, nil
}

// Codec converts the process settings into a codec Config.
func (c Config) Codec() morse.Config {
	return morse.DefaultConfig(
		morse.WithPolicy(morse.UnknownPolicy(c.Policy)),
		morse.WithReplacement(c.Replacement),
		morse.WithPreserveCase(c.PreserveCase),
		morse.WithLetterDelimiter(c.LetterDelim),
		morse.WithWordDelimiter(c.WordDelim),
	)
}
