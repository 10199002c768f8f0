package model

import (
	"encoding/base64"
	"fmt"
)

// ImageStatus tags the outcome of a visualization fetch.
type ImageStatus string

const (
	ImageAbsent      ImageStatus = "absent"
	ImageUnavailable ImageStatus = "unavailable"
	ImageEncoded     ImageStatus = "encoded"
)

// Image is an embeddable image or a marker explaining why there is none.
// MIMEType and Data are only set when Status is ImageEncoded.
type Image struct {
	Status   ImageStatus `json:"status"`
	MIMEType string      `json:"mime_type,omitempty"`
	Data     string      `json:"data,omitempty"`
}

func AbsentImage() Image { return Image{Status: ImageAbsent} }

func UnavailableImage() Image { return Image{Status: ImageUnavailable} }

// EncodedImage base64-encodes raw.
func EncodedImage(mimeType string, raw []byte) Image {
	return Image{
		Status:   ImageEncoded,
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(raw),
	}
}

func (i Image) IsEncoded() bool { return i.Status == ImageEncoded }

// DataURI returns the image as a data: URI, or "" when not encoded.
func (i Image) DataURI() string {
	if !i.IsEncoded() {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", i.MIMEType, i.Data)
}

// Decode returns the raw image bytes.
func (i Image) Decode() ([]byte, error) {
	if !i.IsEncoded() {
		return nil, fmt.Errorf("image is %s", i.Status)
	}
	return base64.StdEncoding.DecodeString(i.Data)
}
