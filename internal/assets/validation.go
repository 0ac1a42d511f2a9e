package assets

import (
	"fmt"
	"strings"
)

// RequiredIDs lists the element ids the host looks up inside a comment box.
var RequiredIDs = []string{"commentbox", "contenteditable-root", "footer", "emoji-button"}

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Names with path separators or dots are rejected.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidatePage checks that page declares every element in RequiredIDs.
func ValidatePage(page string) error {
	for _, id := range RequiredIDs {
		if !strings.Contains(page, `id="`+id+`"`) {
			return fmt.Errorf("%w: #%s", ErrIncompletePage, id)
		}
	}
	return nil
}
