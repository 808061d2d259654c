// Package objectkey derives date-partitioned storage keys for uploaded
// objects. Partitioning by date bounds per-directory fan-out.
package objectkey

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const keyPrefix = "plaindoc"

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// fallback extensions for declared image MIME types without a usable
// filename suffix.
var mimeExtensions = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
	"image/bmp":     "bmp",
	"image/tiff":    "tif",
}

var extPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Derive returns a new storage key of the form
// plaindoc/{yyyy}/{mm}/{dd}/{unixMillis}-{random8}.{ext}. Uniqueness of the
// random suffix is probabilistic; the millisecond prefix makes collisions
// negligible in practice.
func Derive(fileName, contentType string) string {
	now := time.Now()
	return fmt.Sprintf("%s/%04d/%02d/%02d/%d-%s.%s",
		keyPrefix,
		now.Year(), int(now.Month()), now.Day(),
		now.UnixMilli(),
		randomToken(8),
		resolveExtension(fileName, contentType),
	)
}

// resolveExtension applies the ordered policy: filename suffix when it is
// plain alphanumeric, then the MIME fallback table, then "png".
func resolveExtension(fileName, contentType string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext != "" && extPattern.MatchString(ext) {
		return strings.ToLower(ext)
	}
	if mapped, ok := mimeExtensions[strings.ToLower(strings.TrimSpace(contentType))]; ok {
		return mapped
	}
	return "png"
}

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}
	return string(b)
}
