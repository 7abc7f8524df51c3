// internal/ws/file_test.go
package ws

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func dataURI(raw []byte) string {
	return "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestValidateFilePayloadAcceptsSmallFile(t *testing.T) {
	payload := &SendFilePayload{
		Receiver: "u2",
		File:     FileAttachment{Data: dataURI([]byte("hello")), Name: "hello.txt"},
	}

	size, violation := validateFilePayload(payload)
	assert.Empty(t, violation)
	assert.Equal(t, int64(5), size)
}

func TestValidateFilePayloadMissingData(t *testing.T) {
	cases := []*SendFilePayload{
		{Receiver: "", File: FileAttachment{Data: dataURI([]byte("x"))}},
		{Receiver: "u2", File: FileAttachment{Data: ""}},
	}

	for _, payload := range cases {
		_, violation := validateFilePayload(payload)
		assert.Equal(t, msgInvalidFileData, violation)
	}
}

func TestValidateFilePayloadRejectsMissingMarker(t *testing.T) {
	payload := &SendFilePayload{
		Receiver: "u2",
		File:     FileAttachment{Data: base64.StdEncoding.EncodeToString([]byte("no marker"))},
	}

	_, violation := validateFilePayload(payload)
	assert.Equal(t, msgInvalidFileFormat, violation)
}

func TestValidateFilePayloadRejectsBadBase64(t *testing.T) {
	payload := &SendFilePayload{
		Receiver: "u2",
		File:     FileAttachment{Data: "data:text/plain;base64,%%%not-base64%%%"},
	}

	_, violation := validateFilePayload(payload)
	assert.Equal(t, msgInvalidFileFormat, violation)
}

func TestValidateFilePayloadSizeCeiling(t *testing.T) {
	// The ceiling is measured on decoded bytes, not the encoded string.
	atLimit := &SendFilePayload{
		Receiver: "u2",
		File:     FileAttachment{Data: dataURI(make([]byte, maxFileBytes))},
	}
	size, violation := validateFilePayload(atLimit)
	assert.Empty(t, violation)
	assert.Equal(t, int64(maxFileBytes), size)

	overLimit := &SendFilePayload{
		Receiver: "u2",
		File:     FileAttachment{Data: dataURI(make([]byte, maxFileBytes+1))},
	}
	_, violation = validateFilePayload(overLimit)
	assert.Equal(t, msgFileTooLarge, violation)
}
