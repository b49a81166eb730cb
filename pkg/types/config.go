package types

import "errors"

// Config holds the resolved settings of the cowbox CLI. Values come from
// config.yaml, COWBOX_* environment variables, and flags, in increasing
// precedence.
type Config struct {
	Format      string `json:"format" yaml:"format"`
	Trace       bool   `json:"trace" yaml:"trace"`
	DataDir     string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`
	HistoryFile string `json:"history_file,omitempty" yaml:"history_file,omitempty"`
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultFormat is used when neither config nor flags name a format.
const DefaultFormat = FormatText

// Config validation errors.
var (
	ErrFormatEmpty   = errors.New("format must not be empty")
	ErrFormatUnknown = errors.New("unknown output format")
)

// knownFormats lists the formats that Validate accepts.
var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Format == "" {
		return ErrFormatEmpty
	}
	if !knownFormats[c.Format] {
		return ErrFormatUnknown
	}
	return nil
}
