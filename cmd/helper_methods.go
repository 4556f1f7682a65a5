package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/envtray/internal/configs"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/persist"
	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/utils"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode and stdout is a terminal. Returns the spinner and
// a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines. The cleanup function
// passes the final message through ui.EnsureNewline before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	animate := !verbose && !debug && utils.IsOutputTerminal()
	if animate {
		s.Start()
		log.SetOutput(io.Discard)
		Logger.Quiet = true
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		if animate {
			log.SetOutput(os.Stdout)
			Logger.Quiet = false
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if animate {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// resolveProject maps a project id, name or path argument to its id.
func resolveProject(ctx context.Context, ref string) (string, error) {
	project, err := workflows.ResolveProject(ctx, ref)
	if err != nil {
		return "", err
	}
	Logger.Debugf("Resolved project %q to %s (%s)", ref, project.ID, project.Path)
	return project.ID, nil
}

// formatError turns a workflow error into the message shown to the user.
func formatError(err error) string {
	var validationErr *persist.ConfigValidationError
	var ioErr *persist.IOError

	switch {
	case errors.As(err, &validationErr):
		msg := ui.ErrorMark() + " " + ui.Path.Sprint(validationErr.File) + " is not a valid project configuration\n"
		for _, issue := range validationErr.Issues {
			path := issue.Path
			if path == "" {
				path = "/"
			}
			msg += "  " + ui.Code.Sprint(path) + " " + issue.Message + "\n"
		}
		return msg

	case errors.Is(err, kerrors.ErrProjectNotFound):
		return ui.ErrorMark() + " " + err.Error() + "\n" +
			ui.HintMark() + " Run " + ui.Code.Sprint("envtray project list") + " to see registered projects"

	case errors.Is(err, kerrors.ErrAmbiguousProject):
		return ui.ErrorMark() + " " + err.Error() + "\n" +
			ui.HintMark() + " Run " + ui.Code.Sprint("envtray project list") + " to find the project id"

	case errors.Is(err, kerrors.ErrProjectExists):
		return ui.WarningMark() + " " + err.Error() + "\n" +
			ui.HintMark() + " Run " + ui.Code.Sprint("envtray project refresh") + " to pick up new env files"

	case errors.Is(err, kerrors.ErrEnvFileNotFound):
		return ui.ErrorMark() + " " + err.Error() + "\n" +
			ui.HintMark() + " Run " + ui.Code.Sprint("envtray project refresh") + " if the file was created recently"

	case errors.Is(err, kerrors.ErrGroupNotFound):
		return ui.ErrorMark() + " " + err.Error() + "\n" +
			ui.HintMark() + " Run " + ui.Code.Sprint("envtray group list") + " to see the saved groups"

	case errors.Is(err, kerrors.ErrTemplateNotFound):
		return ui.ErrorMark() + " " + err.Error() + "\n" +
			ui.HintMark() + " Run " + ui.Code.Sprint("envtray group template list") + " to see the saved templates"

	case errors.Is(err, kerrors.ErrInvalidStore):
		return ui.ErrorMark() + " " + err.Error() + "\n" +
			ui.HintMark() + " Fix " + ui.Path.Sprint(storePath()) + " or move it aside to start with no projects"

	case errors.Is(err, kerrors.ErrNoProjects):
		return ui.WarningMark() + " No projects registered\n" +
			ui.HintMark() + " Run " + ui.Code.Sprint("envtray project add <path>") + " first"

	case errors.Is(err, kerrors.ErrNoAuditLog):
		return ui.Info.Sprint("ℹ") + " No audit log found. Operations are logged once you change a project."

	case errors.Is(err, kerrors.ErrInvalidGroup),
		errors.Is(err, kerrors.ErrInvalidTemplate),
		errors.Is(err, kerrors.ErrProjectPathNotFound),
		errors.Is(err, kerrors.ErrInvalidImport),
		errors.Is(err, kerrors.ErrInvalidDateFormat):
		return ui.ErrorMark() + " " + err.Error()

	case errors.As(err, &ioErr):
		return ui.ErrorMark() + " Could not " + ioErr.Op + " " + ui.Path.Sprint(ioErr.Path) + ": " + ioErr.Err.Error()

	default:
		return ui.ErrorMark() + " " + err.Error()
	}
}

// isUnexpectedError returns true if the error should cause a non-zero exit.
// Errors caused by a wrong argument only print a message.
func isUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrProjectNotFound),
		errors.Is(err, kerrors.ErrAmbiguousProject),
		errors.Is(err, kerrors.ErrProjectExists),
		errors.Is(err, kerrors.ErrEnvFileNotFound),
		errors.Is(err, kerrors.ErrGroupNotFound),
		errors.Is(err, kerrors.ErrInvalidGroup),
		errors.Is(err, kerrors.ErrTemplateNotFound),
		errors.Is(err, kerrors.ErrInvalidTemplate),
		errors.Is(err, kerrors.ErrProjectPathNotFound),
		errors.Is(err, kerrors.ErrInvalidProjectConfig),
		errors.Is(err, kerrors.ErrInvalidStore),
		errors.Is(err, kerrors.ErrNoProjects),
		errors.Is(err, kerrors.ErrInvalidImport),
		errors.Is(err, kerrors.ErrInvalidDateFormat),
		errors.Is(err, kerrors.ErrNoAuditLog):
		return false
	default:
		return true
	}
}

// handleError sets the spinner's final message for err and returns err only
// when it is unexpected.
func handleError(s *spinner.Spinner, err error) error {
	s.FinalMSG = formatError(err)
	if isUnexpectedError(err) {
		return err
	}
	Logger.Debugf("Handled error: %v", err)
	return nil
}

// reportError is handleError for commands that print without a spinner.
func reportError(err error) error {
	fmt.Println(formatError(err))
	if isUnexpectedError(err) {
		return err
	}
	Logger.Debugf("Handled error: %v", err)
	return nil
}

// plural returns "1 file" or "3 files".
func plural(n int, noun string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, noun)
	}
	if len(noun) > 1 && strings.HasSuffix(noun, "y") && !strings.ContainsRune("aeiou", rune(noun[len(noun)-2])) {
		return printer.Sprintf("%d %sies", n, strings.TrimSuffix(noun, "y"))
	}
	return printer.Sprintf("%d %ss", n, noun)
}

// storePath is the configured project store, for hints.
func storePath() string {
	config, err := configs.Load()
	if err != nil {
		return configs.UserEnvtraySettings.StorePath
	}
	return config.Store.Path
}
