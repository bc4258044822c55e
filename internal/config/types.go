package config

import "fmt"

// Target selects which of the two Marvin APIs a command talks to.
type Target string

const (
	// TargetAuto tries the desktop API first and falls back to the public API.
	TargetAuto Target = "auto"
	// TargetDesktop pins all requests to the local desktop app.
	TargetDesktop Target = "desktop"
	// TargetPublic pins all requests to the public cloud API.
	TargetPublic Target = "public"
)

// ParseTarget validates a target string from config, environment, or flags.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetAuto, TargetDesktop, TargetPublic:
		return Target(s), nil
	default:
		return "", &ConfigurationError{
			Setting: "target",
			Value:   s,
			Message: "must be one of: auto, desktop, public",
		}
	}
}

// OutputFormat defines the output format for command results.
type OutputFormat string

const (
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatCSV      OutputFormat = "csv"
	OutputFormatText     OutputFormat = "text"
	OutputFormatTemplate OutputFormat = "template"
)

// ParseOutputFormat validates an output format string from config,
// environment, or flags.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatJSON, OutputFormatCSV, OutputFormatText, OutputFormatTemplate:
		return OutputFormat(s), nil
	default:
		return "", &ConfigurationError{
			Setting: "outputFormat",
			Value:   s,
			Message: "must be one of: json, csv, text, template",
		}
	}
}

// Options is the effective configuration of a single invocation, produced by
// Resolve. Nothing mutates an Options after it is built; commands that need a
// particular endpoint (for example desktop-only operations) express that
// through the operation capability, not by editing the resolved options.
type Options struct {
	APIToken        string
	FullAccessToken string
	Target          Target
	OutputFormat    OutputFormat
	Template        string
	Quiet           bool
	Debug           bool
	NoHeaders       bool
	DesktopURL      string
	PublicURL       string
}

// FileConfig mirrors the persisted config.yaml. Empty values mean "not set";
// Resolve falls back to the compiled defaults for those.
type FileConfig struct {
	APIToken        string `yaml:"apiToken,omitempty"`
	FullAccessToken string `yaml:"fullAccessToken,omitempty"`
	Target          string `yaml:"target,omitempty"`
	OutputFormat    string `yaml:"outputFormat,omitempty"`
	DesktopURL      string `yaml:"desktopUrl,omitempty"`
	PublicURL       string `yaml:"publicUrl,omitempty"`
	Quiet           *bool  `yaml:"quiet,omitempty"`
}

// Overrides carries values set explicitly by one layer above the persisted
// config (environment variables or command-line flags). A nil field was not
// set by that layer and leaves the lower layers' value in place. Template,
// Debug, and NoHeaders exist only as flags, so their zero values already
// mean "not set".
type Overrides struct {
	APIToken        *string
	FullAccessToken *string
	Target          *string
	OutputFormat    *string
	DesktopURL      *string
	PublicURL       *string
	Quiet           *bool
	Template        string
	Debug           bool
	NoHeaders       bool
}

// Set reports whether the override layer touches any field at all.
func (o Overrides) Set() bool {
	return o.APIToken != nil || o.FullAccessToken != nil || o.Target != nil ||
		o.OutputFormat != nil || o.DesktopURL != nil || o.PublicURL != nil ||
		o.Quiet != nil || o.Template != "" || o.Debug || o.NoHeaders
}

// String implements fmt.Stringer for debug logging without leaking tokens.
func (o *Options) String() string {
	return fmt.Sprintf("Options{target=%s output=%s quiet=%t desktop=%s public=%s apiToken=%s fullAccessToken=%s}",
		o.Target, o.OutputFormat, o.Quiet, o.DesktopURL, o.PublicURL,
		redact(o.APIToken), redact(o.FullAccessToken))
}

func redact(token string) string {
	if token == "" {
		return "<none>"
	}
	return "<set>"
}
