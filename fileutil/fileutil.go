// Package fileutil provides attachment helpers for reading files into
// the base64 form the Send API expects.
package fileutil

import (
	"encoding/base64"
	"fmt"
	"os"
)

// MaxAttachmentBytes is the provider's cap on a single attachment
// (15 MiB). CheckSize compares against it; nothing else in the library
// enforces it.
const MaxAttachmentBytes = 15 * 1024 * 1024

// FileToBase64 reads the file at path and returns its standard base64
// encoding.
func FileToBase64(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fileutil: read %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// CheckSize reports whether the file at path exceeds the provider's
// single-attachment cap, along with its size in bytes. The check is
// advisory; an oversize attachment is still sent if the caller insists,
// and rejected by the provider.
func CheckSize(path string) (tooLarge bool, size int64, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, 0, fmt.Errorf("fileutil: stat %s: %w", path, err)
	}
	size = info.Size()
	return size > MaxAttachmentBytes, size, nil
}
