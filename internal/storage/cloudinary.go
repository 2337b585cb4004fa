package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryUploader pushes files to Cloudinary and hands back the secure URL.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("connecting cloudinary: %w", err)
	}
	return &CloudinaryUploader{client: client}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader, folder string) (string, error) {
	res, err := u.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     uuid.NewString(),
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("uploading to cloudinary: %w", err)
	}
	return res.SecureURL, nil
}
