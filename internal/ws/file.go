// internal/ws/file.go
package ws

import (
	"encoding/base64"
	"strings"
)

// Inline file payloads are capped at 5 MiB of decoded bytes. The ceiling is
// enforced on decoded length, not the (roughly 4/3 larger) encoded string.
const maxFileBytes = 5 * 1024 * 1024

const (
	msgInvalidFileData   = "Invalid file data"
	msgInvalidFileFormat = "Invalid file format"
	msgFileTooLarge      = "File size too large (max 5MB)"
	msgRecipientOffline  = "Recipient not found or offline"
)

// validateFilePayload checks payload shape, the data-URI marker and the size
// ceiling. Returns the decoded byte count and an empty message on success, or
// a fileError message on any violation. Never touches the presence registry.
func validateFilePayload(p *SendFilePayload) (int64, string) {
	if p == nil || p.Receiver == "" || p.File.Data == "" {
		return 0, msgInvalidFileData
	}

	if !strings.HasPrefix(p.File.Data, "data:") {
		return 0, msgInvalidFileFormat
	}

	idx := strings.Index(p.File.Data, ",")
	if idx < 0 {
		return 0, msgInvalidFileFormat
	}

	decoded, err := base64.StdEncoding.DecodeString(p.File.Data[idx+1:])
	if err != nil {
		return 0, msgInvalidFileFormat
	}

	size := int64(len(decoded))
	if size > maxFileBytes {
		return 0, msgFileTooLarge
	}

	return size, ""
}
