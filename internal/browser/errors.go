package browser

import "errors"

// Sentinel errors for browser operations.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrInstall        = errors.New("failed to install page script")
	ErrEval           = errors.New("page script call failed")
	ErrWidgetGone     = errors.New("comment box is no longer on the page")
)
