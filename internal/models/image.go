// internal/models/image.go
package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Image is a stored product image: an inline data reference plus the
// metadata of the file it was built from.
type Image struct {
	DataURL string   `json:"data_url"`
	File    FileMeta `json:"file"`
}

type FileMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

type Images []Image

func (im Images) Clone() Images {
	if im == nil {
		return nil
	}
	out := make(Images, len(im))
	copy(out, im)
	return out
}

// ImageUpload is a submitted file that has not been encoded yet.
type ImageUpload struct {
	Name string
	Type string
	Data []byte
}

// EncodeImage turns an upload into a self-contained data URL.
func EncodeImage(u ImageUpload) Image {
	return Image{
		DataURL: "data:" + u.Type + ";base64," + base64.StdEncoding.EncodeToString(u.Data),
		File: FileMeta{
			Name: u.Name,
			Type: u.Type,
			Size: int64(len(u.Data)),
		},
	}
}

var ErrNotDataURL = errors.New("not a base64 data URL")

// DecodeDataURL splits "data:<mime>;base64,<payload>" into its MIME type and
// decoded bytes.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}

	mimeType, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, ErrNotDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL payload: %w", err)
	}
	return mimeType, data, nil
}

// LibraryImage is an entry of the standalone single-file upload library.
type LibraryImage struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

func (img LibraryImage) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(img.Data)
}
