package v3

import (
	"fmt"
	"path/filepath"

	"github.com/example/mailjet-go/fileutil"
)

// Attachment is a named, typed, base64-encoded file payload. The same
// type serves regular and inline attachments; the distinction is purely
// which Message collection it is placed in. No size or content-type
// checks are performed here, the provider enforces its own limits.
type Attachment struct {
	ContentType string `json:"Content-type"`
	Filename    string `json:"Filename"`
	Content     string `json:"content"`
}

// NewAttachment builds an attachment from already base64-encoded
// content.
func NewAttachment(contentType, filename, base64Content string) Attachment {
	return Attachment{
		ContentType: contentType,
		Filename:    filename,
		Content:     base64Content,
	}
}

// NewAttachmentFromFile reads and encodes the file at path, using its
// base name as the attachment filename.
func NewAttachmentFromFile(contentType, path string) (Attachment, error) {
	content, err := fileutil.FileToBase64(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("v3: attach %s: %w", path, err)
	}
	return NewAttachment(contentType, filepath.Base(path), content), nil
}
