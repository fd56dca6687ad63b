// Package attachment handles the inline file encoding used by incidents:
// every file is carried as a base64 data URI inside the incident record, with
// no separate blob store. The upload policy here belongs to the view layer;
// the data provider itself accepts any attachment.
package attachment

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"dentalflow/internal/model"
)

// ErrNoDataURI marks an attachment whose URL is not a data URI.
var ErrNoDataURI = errors.New("attachment: url is not a base64 data uri")

// Encode wraps raw file bytes into an attachment record.
func Encode(name, mimeType string, data []byte) model.FileAttachment {
	return model.FileAttachment{
		Name: name,
		URL:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Type: mimeType,
	}
}

// Decode extracts the raw bytes from an attachment's data URI.
func Decode(att model.FileAttachment) ([]byte, error) {
	if !strings.HasPrefix(att.URL, "data:") {
		return nil, ErrNoDataURI
	}
	_, payload, found := strings.Cut(att.URL, ";base64,")
	if !found {
		return nil, ErrNoDataURI
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("attachment %s: %w", att.Name, err)
	}
	return data, nil
}

// Size estimates the decoded byte size of an attachment without decoding it.
// Base64 carries 3 bytes per 4 characters.
func Size(att model.FileAttachment) int64 {
	_, payload, found := strings.Cut(att.URL, ";base64,")
	if !found {
		return 0
	}
	return int64(len(payload)) * 3 / 4
}

// DetectType guesses a MIME type from the file name, falling back to a
// generic binary type.
func DetectType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		// strip parameters like "; charset=utf-8"
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
		return t
	}
	return "application/octet-stream"
}

// Policy is the upload allow-list enforced before an attachment reaches the
// data provider.
type Policy struct {
	MaxFiles int
	MaxBytes int64
	// Accepted entries are either MIME patterns ("application/pdf",
	// "image/*") or file extensions (".doc").
	Accepted []string
}

// DefaultPolicy matches the original upload widget: five files, 10 MiB each,
// images, PDFs and Word documents.
func DefaultPolicy() Policy {
	return Policy{
		MaxFiles: 5,
		MaxBytes: 10 << 20,
		Accepted: []string{"image/*", "application/pdf", ".doc", ".docx"},
	}
}

// Check validates one candidate file against the policy, given the files
// already attached to the incident.
func (p Policy) Check(existing []model.FileAttachment, name, mimeType string, size int64) error {
	if len(existing) >= p.MaxFiles {
		return fmt.Errorf("maximum %d files allowed", p.MaxFiles)
	}
	if size > p.MaxBytes {
		return fmt.Errorf("file %s is too large, maximum size is %d MB", name, p.MaxBytes>>20)
	}
	if !p.accepts(name, mimeType) {
		return fmt.Errorf("file %s is not an accepted file type", name)
	}
	return nil
}

func (p Policy) accepts(name, mimeType string) bool {
	lower := strings.ToLower(name)
	for _, accepted := range p.Accepted {
		if prefix, ok := strings.CutSuffix(accepted, "*"); ok {
			if strings.HasPrefix(mimeType, prefix) {
				return true
			}
			continue
		}
		if strings.HasSuffix(lower, strings.ToLower(accepted)) || mimeType == accepted {
			return true
		}
	}
	return false
}
