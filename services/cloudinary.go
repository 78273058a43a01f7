package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// AttachmentService stores task and interaction attachments in
// Cloudinary. Entities only record attachment names; the uploaded file
// and its URL live here.
type AttachmentService struct {
	cld *cloudinary.Cloudinary
}

var Attachments *AttachmentService

func InitializeAttachments(cloudinaryURL string) error {
	if cloudinaryURL == "" {
		return fmt.Errorf("cloudinary URL is required")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	Attachments = &AttachmentService{cld: cld}
	return nil
}

// Upload stores one attachment under the given folder and returns its
// secure URL. Single attempt; the caller surfaces failures.
func (as *AttachmentService) Upload(ctx context.Context, file multipart.File, folder, filename string) (string, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	publicID := fmt.Sprintf("%s/%s_%d", folder, base, time.Now().UnixNano())

	truePtr := true
	falsePtr := false
	result, err := as.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		UseFilename:    &truePtr,
		UniqueFilename: &truePtr,
		Overwrite:      &falsePtr,
		ResourceType:   "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload attachment: %w", err)
	}

	url := result.SecureURL
	if url == "" {
		url = forceHTTPS(result.URL)
	}
	return url, nil
}

func forceHTTPS(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}
