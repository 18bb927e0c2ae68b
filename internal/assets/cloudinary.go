package assets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Destroyer removes an already-hosted image by its delivery URL. Deleting the
// database record always wins: implementations log failures and move on.
type Destroyer interface {
	Destroy(ctx context.Context, rawURL string)
}

// Noop is used when no image host is configured.
type Noop struct{}

func (Noop) Destroy(context.Context, string) {}

type CloudinaryDestroyer struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds a destroyer from a CLOUDINARY_URL-style connection
// string. An empty string yields the Noop destroyer.
func NewCloudinary(cloudinaryURL string) (Destroyer, error) {
	if cloudinaryURL == "" {
		return Noop{}, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryDestroyer{cld: cld}, nil
}

func (d *CloudinaryDestroyer) Destroy(ctx context.Context, rawURL string) {
	const op = "CloudinaryDestroyer.Destroy"
	log := slog.With("op", op)

	publicID := PublicIDFromURL(rawURL)
	if publicID == "" {
		return
	}
	_, err := d.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Warn("failed to destroy asset", "publicId", publicID, "err", err)
	}
}

// PublicIDFromURL extracts the Cloudinary public id from a delivery URL:
// everything after the /upload/ segment, minus an optional v<n> version
// segment and the file extension. Returns "" for URLs hosted elsewhere.
func PublicIDFromURL(rawURL string) string {
	_, after, found := strings.Cut(rawURL, "/upload/")
	if !found {
		return ""
	}
	parts := strings.Split(after, "/")
	if len(parts) > 1 && isVersionSegment(parts[0]) {
		parts = parts[1:]
	}
	id := strings.Join(parts, "/")
	if dot := strings.LastIndex(id, "."); dot > 0 {
		id = id[:dot]
	}
	return id
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
