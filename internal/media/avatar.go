// Package media normalizes uploaded profile pictures into fixed-size PNGs.
package media

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"medialist/api/internal/apperr"
	"medialist/api/internal/media/sniffer"
)

// AvatarSize is the edge length of a normalized avatar in pixels.
const AvatarSize = 250

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// NormalizeAvatar turns an uploaded image into AvatarSize×AvatarSize PNG
// bytes. The extension and size gates run before any decoding; maxBytes
// guards against decompression of oversized payloads.
func NormalizeAvatar(filename string, data []byte, maxBytes int64) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, apperr.ErrUnsupportedMedia
	}

	if int64(len(data)) > maxBytes {
		return nil, apperr.ErrTooLarge
	}

	if _, err := sniffer.Detect(data); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBadImage, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", apperr.ErrBadImage, err)
	}

	resized := imaging.Fill(img, AvatarSize, AvatarSize, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: encode: %v", apperr.ErrBadImage, err)
	}

	return buf.Bytes(), nil
}
