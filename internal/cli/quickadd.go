package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"marvin/internal/api"
	"marvin/internal/classify"
)

// quickAddHistoryFile keeps line history across quick add sessions.
const quickAddHistoryFile = ".marvin_quickadd_history"

// QuickAdd runs the interactive capture loop: every non-empty line becomes a
// task until Ctrl+D or an exit command. A failed line is reported and the
// loop continues unless stopOnError is set, so one unreachable endpoint never
// costs the remaining input.
func QuickAdd(ctx context.Context, exec *Executor, stopOnError bool) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "marvin » ",
		HistoryFile:         filepath.Join(os.TempDir(), quickAddHistoryFile),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	if !exec.Options().Quiet {
		fmt.Fprintln(exec.stdout, "Quick add: every line becomes a task. Ctrl+D to finish.")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				continue
			}
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		title := strings.TrimSpace(line)
		if title == "" {
			continue
		}
		if title == "exit" || title == "quit" {
			return nil
		}

		if err := addQuickTask(ctx, exec, title); err != nil {
			if stopOnError {
				return err
			}
			fmt.Fprintln(exec.stderr, FormatError(err))
		}
	}
}

// addQuickTask sends one captured line as a task. The line is always a title
// here, never a keyword form, so it skips argument classification and goes
// straight to task creation.
func addQuickTask(ctx context.Context, exec *Executor, title string) error {
	op := api.Operation{Method: http.MethodPost, Path: classify.PathAddTask}

	resp, err := exec.Dispatch(ctx, op, []byte(title), classify.ContentTypeText, nil)
	if err != nil {
		return err
	}

	message := "Added task"
	if created := ResponseField(resp, "title"); created != "" {
		message = "Added task: " + created
	}
	return exec.Acknowledge(resp, message)
}

// filterInput filters input characters for readline
func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
