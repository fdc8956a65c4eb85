package utils

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"DocSpot/config"
)

// InitCloudinary builds a client from the loaded configuration.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		config.App.CloudinaryCloudName,
		config.App.CloudinaryAPIKey,
		config.App.CloudinaryAPISecret)
}

/*
* Upload a multipart image to cloudinary
* Returns the secure URL to store on the document
 */
func UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
