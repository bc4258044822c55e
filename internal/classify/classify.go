// Package classify maps the arguments and input of a create request onto a
// concrete API call. It is a pure decision layer: no file reading, no HTTP,
// no process exit. The command layer gathers the inputs, this package decides
// where they go, and the dispatch layer carries them there.
package classify

import (
	"encoding/json"
	"strings"
)

// Action is the kind of request a Decision resolved to.
type Action string

const (
	ActionCreateTask    Action = "create_task"
	ActionCreateProject Action = "create_project"
	ActionError         Action = "error"
	ActionShowHelp      Action = "show_help"
)

// API paths relative to the configured base URL (the base already carries
// the /api prefix on both the desktop and the public service).
const (
	PathAddTask    = "/addTask"
	PathAddProject = "/addProject"
)

// Content types for create request bodies.
const (
	ContentTypeText = "text/plain"
	ContentTypeJSON = "application/json"
)

// projectDB is the database name Marvin stores projects and categories
// under. A JSON document declaring it routes to project creation.
const projectDB = "Categories"

// Decision is the outcome of classifying one create request. Exactly one of
// the payload fields (Path/Body/ContentType) or ErrorMessage is populated;
// a show_help decision carries neither.
type Decision struct {
	Action       Action
	Path         string
	Body         string
	ContentType  string
	ErrorMessage string
}

// Err returns the decision's error, or nil when the request is routable.
func (d Decision) Err() error {
	if d.Action == ActionError {
		return &ClassificationError{Message: d.ErrorMessage}
	}
	return nil
}

// Options carries the already-parsed flag context of a create request.
type Options struct {
	// Help requests usage output instead of an API call.
	Help bool
	// File is the input designator given via --file. The caller reads the
	// content; classification never touches the filesystem.
	File string
	// FromStdin marks content read from the stdin sentinel "-". It only
	// selects the wording of the empty-input error; the caller makes the
	// distinction because only it knows how the content was obtained.
	FromStdin bool
}

// Decide maps positional arguments, flag context, and input content onto a
// routing decision. content is the raw input read from --file and is ignored
// unless Options.File is set.
//
// Rules, in order: an explicit help request wins over everything. With no
// positional arguments, file input is classified by its content. Otherwise
// one or two positional arguments describe a task or project title, with the
// keywords "task" and "project" selecting the kind; a given file is ignored.
// Anything else is a classification error carrying the exact message to
// print.
func Decide(args []string, opts Options, content string) Decision {
	if opts.Help {
		return Decision{Action: ActionShowHelp}
	}

	if len(args) == 0 {
		if opts.File != "" {
			return decideContent(content, opts.FromStdin)
		}
		return errorDecision("No parameters provided")
	}

	switch {
	case len(args) == 1 && args[0] == "task":
		return errorDecision("Missing task title")
	case len(args) == 1 && args[0] == "project":
		return errorDecision("Missing project title")
	case len(args) == 1:
		return taskDecision(args[0], ContentTypeText)
	case len(args) == 2 && args[0] == "task":
		return taskDecision(args[1], ContentTypeText)
	case len(args) == 2 && args[0] == "project":
		return projectDecision(args[1], ContentTypeText)
	default:
		return errorDecision("Invalid command format")
	}
}

// decideContent classifies file or stdin input. A leading "{" is sniffed as
// a raw JSON document and routed by its "db" field; content that fails to
// parse degrades to a plain-text title instead of erroring, so a title that
// merely starts with a brace still creates a task. JSON bodies are forwarded
// verbatim, never re-marshaled.
func decideContent(content string, fromStdin bool) Decision {
	if strings.TrimSpace(content) == "" {
		if fromStdin {
			return errorDecision("Stdin was empty")
		}
		return errorDecision("File was empty")
	}

	if strings.HasPrefix(content, "{") {
		var doc map[string]any
		if err := json.Unmarshal([]byte(content), &doc); err == nil {
			if db, _ := doc["db"].(string); db == projectDB {
				return projectDecision(content, ContentTypeJSON)
			}
			return taskDecision(content, ContentTypeJSON)
		}
	}

	return taskDecision(content, ContentTypeText)
}

func taskDecision(body, contentType string) Decision {
	return Decision{
		Action:      ActionCreateTask,
		Path:        PathAddTask,
		Body:        body,
		ContentType: contentType,
	}
}

func projectDecision(body, contentType string) Decision {
	return Decision{
		Action:      ActionCreateProject,
		Path:        PathAddProject,
		Body:        body,
		ContentType: contentType,
	}
}

func errorDecision(message string) Decision {
	return Decision{Action: ActionError, ErrorMessage: message}
}
