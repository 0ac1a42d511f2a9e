// Package fileutil provides file and path helpers shared by the CLI and the
// browser host.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// TempPrefix prefixes every temporary file created by WriteTempFile.
const TempPrefix = "commentfmt-"

// MaxInputSize caps text read by ReadInput (default 4MB).
var MaxInputSize int64 = 4 << 20

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrInputTooLarge          = errors.New("input exceeds maximum size")
)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", TempPrefix+"*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsURL returns true if the string looks like a URL a browser can open.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "file://")
}

// FileURL returns the file:// URL for path, made absolute first.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	if !strings.HasPrefix(u.Path, "/") {
		// Windows drive paths: file:///C:/...
		u.Path = "/" + u.Path
	}
	return u.String(), nil
}

// ReadInput reads at most MaxInputSize bytes from r. Larger inputs fail
// with ErrInputTooLarge instead of being truncated.
func ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if int64(len(data)) > MaxInputSize {
		return "", fmt.Errorf("%w: max %d bytes", ErrInputTooLarge, MaxInputSize)
	}
	return string(data), nil
}

// ReadFile opens path and reads it with ReadInput. "-" reads stdin.
func ReadFile(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		return ReadInput(stdin)
	}
	f, err := os.Open(path) // #nosec G304 -- path chosen by the user
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ReadInput(f)
}
