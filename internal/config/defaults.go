package config

const (
	// DefaultDesktopURL is the API base served by the desktop app's local
	// API server. Only reachable while the app is running.
	DefaultDesktopURL = "http://localhost:12345/api"

	// DefaultPublicURL is the API base of the public cloud service.
	DefaultPublicURL = "https://serv.amazingmarvin.com/api"
)

// GetDefaultOptions returns the compiled-in defaults, the bottom layer of
// option resolution.
func GetDefaultOptions() Options {
	return Options{
		Target:       TargetAuto,
		OutputFormat: OutputFormatText,
		DesktopURL:   DefaultDesktopURL,
		PublicURL:    DefaultPublicURL,
	}
}
