package storage

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

var imageContentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// ScreenshotName returns "<unix millis>.<ext>" for a payment screenshot,
// keeping the lower-cased extension of the original file (jpg when absent).
func ScreenshotName(original string, now time.Time) string {
	return fmt.Sprintf("%d.%s", now.UnixMilli(), Extension(original))
}

// ImageName returns "<unix millis>-<sanitized original>" for package images.
func ImageName(original string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), unsafeNameChars.ReplaceAllString(path.Base(original), "_"))
}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	if ext == "" {
		return "jpg"
	}
	return ext
}

// ContentType prefers the declared type and falls back to the extension map.
func ContentType(declared, name string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if ct, ok := imageContentTypes[Extension(name)]; ok {
		return ct
	}
	return "image/jpeg"
}
