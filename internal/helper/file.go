package helper

import (
	"math"
	"net/url"
	"strings"
)

// SizeInMB converts a byte count to mebibytes rounded to two decimals.
func SizeInMB(sizeBytes int64) float64 {
	return math.Round(float64(sizeBytes)/(1024*1024)*100) / 100
}

// FilenameFromURL derives an upload filename from the last path segment of
// the source URL. A trailing slash means the segment is absent, not the
// directory above it, so the fallback applies.
func FilenameFromURL(rawURL string, fallback string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}

	name := parsed.Path[strings.LastIndex(parsed.Path, "/")+1:]
	if name == "" {
		return fallback
	}

	return name
}
