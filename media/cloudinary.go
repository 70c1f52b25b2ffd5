package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader uploads local files to a Cloudinary folder.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary, folder string) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld, folder: folder}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, localPath string) (Result, error) {
	if u.cld == nil {
		return nil, errors.New("cloudinary client is not configured")
	}

	resp, err := u.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	// API failures come back inside the response body with a nil error.
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}

	return Structured{
		SecureURL: resp.SecureURL,
		URL:       resp.URL,
		PublicID:  resp.PublicID,
	}, nil
}
