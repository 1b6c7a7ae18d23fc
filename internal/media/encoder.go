// Package media converts user-selected image files into the
// transport-ready representation the generative service expects:
// base64-encoded bytes plus a declared media type.
package media

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"munassist/internal/logging"
)

// EncodedImage is an image ready to embed in a request. It is derived
// once from a file and never mutated.
type EncodedImage struct {
	Data     string // base64-encoded bytes
	MIMEType string
}

// Encode reads r fully and produces an EncodedImage with the given media
// type. The only failure mode is a failed read.
func Encode(r io.Reader, mimeType string) (*EncodedImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		logging.MediaError("Encode: read failed: %v", err)
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	logging.Media("Encode: bytes=%d mime=%s", len(data), mimeType)
	return &EncodedImage{
		Data:     base64.StdEncoding.EncodeToString(data),
		MIMEType: mimeType,
	}, nil
}

// EncodeFile encodes the file at path, deriving the media type from the
// file extension and falling back to content sniffing.
func EncodeFile(path string) (*EncodedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		logging.MediaError("EncodeFile: open %s failed: %v", path, err)
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	return Encode(f, mimeType)
}

// DataURI renders the image as a data:<mediaType>;base64,<bytes> string.
func (e *EncodedImage) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", e.MIMEType, e.Data)
}

// ParseDataURI decodes a data URI back into raw bytes and media type.
// The inverse of DataURI; used to materialize generated images.
func ParseDataURI(uri string) ([]byte, string, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, "", fmt.Errorf("not a data URI")
	}
	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode data URI payload: %w", err)
	}
	return data, mimeType, nil
}
