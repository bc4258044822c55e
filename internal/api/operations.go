package api

import "net/http"

// The fixed operations of the Marvin API, shared by the commands and the MCP
// tool surface. Task and project creation are not listed here; their paths
// come out of request classification.
var (
	// OpTodayItems lists the items scheduled for a day.
	OpTodayItems = Operation{Method: http.MethodGet, Path: "/todayItems"}

	// OpDueItems lists the items due by a day.
	OpDueItems = Operation{Method: http.MethodGet, Path: "/dueItems"}

	// OpCategories lists categories and projects.
	OpCategories = Operation{Method: http.MethodGet, Path: "/categories"}

	// OpLabels lists the configured labels.
	OpLabels = Operation{Method: http.MethodGet, Path: "/labels"}

	// OpTrackedItem returns the currently tracked item, if any.
	OpTrackedItem = Operation{Method: http.MethodGet, Path: "/trackedItem"}

	// OpTrack starts or stops time tracking for a task.
	OpTrack = Operation{Method: http.MethodPost, Path: "/track"}

	// OpMarkDone marks a task or project done.
	OpMarkDone = Operation{Method: http.MethodPost, Path: "/markDone"}

	// OpTest verifies the credential against whichever endpoint answers.
	OpTest = Operation{Method: http.MethodPost, Path: "/test"}

	// OpGetDoc reads any database document by id.
	OpGetDoc = Operation{
		Method:     http.MethodGet,
		Path:       "/doc",
		Capability: Capability{RequiresFullAccess: true},
	}

	// OpBackup asks the desktop app to write a local backup. The public API
	// has no database directory to back up.
	OpBackup = Operation{
		Method:     http.MethodPost,
		Path:       "/backup",
		Capability: Capability{DesktopOnly: true},
	}
)
