package main

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
)

// encodePNGBase64 serializes an RGBA frame the way the frontend's
// <canvas> expects it: a base64 PNG it can drop straight into an
// Image's src, mirroring app_stream.go's base64-encoded event payloads.
func encodePNGBase64(img *image.RGBA) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
