package validate

import "strings"

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

// IsImage reports whether content is a non-empty upload with an
// accepted image media type.
func IsImage(contentType string, size int64) bool {
	if size <= 0 {
		return false
	}
	mediaType := contentType
	if i := strings.Index(contentType, ";"); i >= 0 {
		mediaType = contentType[:i]
	}
	_, ok := allowedImageTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}
