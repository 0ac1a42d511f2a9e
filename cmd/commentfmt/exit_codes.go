package main

import (
	"errors"
	"os"

	commentfmt "github.com/alnah/go-commentfmt"
	"github.com/alnah/go-commentfmt/internal/assets"
	"github.com/alnah/go-commentfmt/internal/browser"
	"github.com/alnah/go-commentfmt/internal/config"
	"github.com/alnah/go-commentfmt/internal/fileutil"
	"github.com/alnah/go-commentfmt/internal/logging"
	"github.com/alnah/go-commentfmt/internal/termview"
)

// Exit codes for the commentfmt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, browser.ErrBrowserConnect) ||
		errors.Is(err, browser.ErrPageCreate) ||
		errors.Is(err, browser.ErrPageLoad) ||
		errors.Is(err, browser.ErrInstall) ||
		errors.Is(err, browser.ErrEval) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrInputTooLarge) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, commentfmt.ErrInvalidDelimiter) ||
		errors.Is(err, commentfmt.ErrSpanOutOfRange) ||
		errors.Is(err, commentfmt.ErrInvalidTheme) ||
		errors.Is(err, termview.ErrUnknownStyle) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidFormat) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrIncompletePage) {
		return ExitUsage
	}

	return ExitGeneral
}
