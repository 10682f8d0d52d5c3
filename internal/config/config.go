package config

import "time"

// Renderers lists the output formats the CLI accepts.
var Renderers = []string{"text", "html", "yaml"}

// LogFormats lists the supported log encodings.
var LogFormats = []string{"console", "json"}

// Config is the root CLI configuration. Values come from an optional YAML
// file, then WORDCIPHER_* environment variables, then command-line flags.
type Config struct {
	Puzzle     string       `yaml:"puzzle"      env:"WORDCIPHER_PUZZLE"`
	PuzzleFile string       `yaml:"puzzle_file" env:"WORDCIPHER_PUZZLE_FILE"`
	Dictionary string       `yaml:"dictionary"  env:"WORDCIPHER_DICTIONARY"`
	Renderer   string       `yaml:"renderer"    env:"WORDCIPHER_RENDERER"    env-default:"text"`
	Output     OutputConfig `yaml:"output"`
	HTTP       HTTPConfig   `yaml:"http"`
	Log        LogConfig    `yaml:"log"`
}

// OutputConfig holds render settings.
type OutputConfig struct {
	Separator          string `yaml:"separator"           env:"WORDCIPHER_SEPARATOR"`
	Title              string `yaml:"title"               env:"WORDCIPHER_TITLE"`
	IncludeConstraints bool   `yaml:"include_constraints" env:"WORDCIPHER_INCLUDE_CONSTRAINTS"`
}

// HTTPConfig controls remote puzzle and dictionary sources.
type HTTPConfig struct {
	Disabled bool          `yaml:"disabled" env:"WORDCIPHER_HTTP_DISABLED"`
	Timeout  time.Duration `yaml:"timeout"  env:"WORDCIPHER_HTTP_TIMEOUT"  env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDCIPHER_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"WORDCIPHER_LOG_FORMAT" env-default:"console"`
}
