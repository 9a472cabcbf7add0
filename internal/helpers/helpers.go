package helpers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	EventsFolder = "events"
)

var (
	slugStrip     = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe token from a title: lowercase, special
// characters stripped, whitespace runs collapsed to single hyphens,
// leading/trailing hyphens trimmed. The same title always yields the same
// slug.
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// StringTrim normalizes an incoming path or query value: trims spaces and
// surrounding quotes which may occur when clients pass values as JSON
// strings or templates.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

// UploadImage pushes a single image to Cloudinary and returns its secure URL.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, filePath, folder string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", fmt.Errorf("image path is empty")
	}

	uploadResult, err := cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"eventhub"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %v", filePath, err)
	}

	return uploadResult.SecureURL, nil
}
