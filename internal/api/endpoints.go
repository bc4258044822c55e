package api

import "marvin/internal/config"

// Credential headers understood by both Marvin APIs.
const (
	HeaderAPIToken        = "X-API-Token"
	HeaderFullAccessToken = "X-Full-Access-Token"
	HeaderRequestID       = "X-Request-Id"
)

// Capability describes what an operation needs from an endpoint. It belongs
// to the operation itself, not to the invocation: `backup` is desktop-only no
// matter what the user configured.
type Capability struct {
	// DesktopOnly pins the operation to the desktop app. The public API
	// cannot serve it, so the target setting is ignored.
	DesktopOnly bool
	// RequiresFullAccess selects the full-access credential for the
	// request. It never changes which endpoints are tried.
	RequiresFullAccess bool
}

// Operation couples an HTTP method and path with the capability it needs.
// The path is relative to the configured base URLs, which already carry the
// /api prefix.
type Operation struct {
	Method string
	Path   string
	Capability
}

// Candidates returns the ordered base URLs to try for an operation. The
// order is the fallback order: the dispatcher moves down the slice only when
// an endpoint is unreachable.
//
//   - desktop-only operations get exactly the desktop URL
//   - target=desktop gets exactly the desktop URL
//   - target=public gets exactly the public URL
//   - target=auto gets desktop first, then public
func Candidates(opts *config.Options, cap Capability) []string {
	if cap.DesktopOnly {
		return []string{opts.DesktopURL}
	}

	switch opts.Target {
	case config.TargetDesktop:
		return []string{opts.DesktopURL}
	case config.TargetPublic:
		return []string{opts.PublicURL}
	default:
		return []string{opts.DesktopURL, opts.PublicURL}
	}
}

// Credential is the header/token pair attached to a dispatched request.
type Credential struct {
	Header string
	Token  string
}

// CredentialFor picks the credential an operation needs from the resolved
// options. A missing token is a configuration error: the user has to either
// persist one (`marvin config set apiToken ...`) or pass it explicitly.
func CredentialFor(opts *config.Options, cap Capability) (Credential, error) {
	if cap.RequiresFullAccess {
		if opts.FullAccessToken == "" {
			return Credential{}, config.NewConfigurationError("fullAccessToken", "",
				"this operation needs the full access token; run 'marvin config set fullAccessToken <token>' or pass --full-access-token")
		}
		return Credential{Header: HeaderFullAccessToken, Token: opts.FullAccessToken}, nil
	}

	if opts.APIToken == "" {
		return Credential{}, config.NewConfigurationError("apiToken", "",
			"no API token configured; run 'marvin config set apiToken <token>' or pass --api-token")
	}
	return Credential{Header: HeaderAPIToken, Token: opts.APIToken}, nil
}
