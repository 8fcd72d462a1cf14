// Package imaging turns embedded base64 image payloads into validated
// raster images for rendering.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Raster formats accepted from the news table.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Status classifies the outcome of a decode. Missing and invalid are kept
// distinct for observability, though both render as "no image available".
type Status int

const (
	// StatusMissing means no payload was supplied. Not a failure.
	StatusMissing Status = iota
	// StatusOK means the payload decoded to a recognized raster image.
	StatusOK
	// StatusInvalid means the payload was malformed base64 or did not
	// parse as a recognized raster image.
	StatusInvalid
)

// Result is the outcome of decoding one payload. A decode never panics or
// returns an error past this boundary; failures are carried in the result.
type Result struct {
	Status Status
	// Format, Width and Height are set only when Status is StatusOK.
	Format string
	Width  int
	Height int
	// Bytes holds the raw decoded image bytes when Status is StatusOK.
	Bytes []byte
	// Reason records why an invalid payload was rejected.
	Reason string
}

// HasImage reports whether the result carries a renderable image.
func (r Result) HasImage() bool {
	return r.Status == StatusOK
}

// DataURI returns the image as a data URI suitable for an <img> src
// attribute, or "" when there is no image.
func (r Result) DataURI() string {
	if r.Status != StatusOK {
		return ""
	}
	return fmt.Sprintf("data:image/%s;base64,%s", r.Format, base64.StdEncoding.EncodeToString(r.Bytes))
}

// Decode converts a base64 payload into a validated raster image result.
// Empty input yields StatusMissing; anything that fails base64 decoding or
// image parsing yields StatusInvalid with a reason.
func Decode(payload string) Result {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Result{Status: StatusMissing}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some producers emit unpadded payloads.
		raw, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return Result{Status: StatusInvalid, Reason: fmt.Sprintf("malformed base64: %v", err)}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Result{Status: StatusInvalid, Reason: fmt.Sprintf("unrecognized image data: %v", err)}
	}

	return Result{
		Status: StatusOK,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Bytes:  raw,
	}
}
