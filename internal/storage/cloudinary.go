package storage

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// rootFolder namespaces every object this application owns.
const rootFolder = "shafi-store"

// CloudinaryStore delegates image storage to Cloudinary. Uploaded images are
// capped to 1000x1000 with automatic quality selection on the server side.
type CloudinaryStore struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewCloudinaryStore builds the remote strategy from credentials.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: cld, cloudName: cloudName}, nil
}

// Put uploads the file under <rootFolder>/<category>/ and returns the URL
// Cloudinary assigns.
func (s *CloudinaryStore) Put(ctx context.Context, category, filename string, src io.Reader) (Upload, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	resp, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:         rootFolder + "/" + category,
		AllowedFormats: api.CldAPIArray(allowedFormats),
		Transformation: "c_limit,w_1000,h_1000,q_auto",
	})
	if err != nil {
		return Upload{}, err
	}
	if resp.Error.Message != "" {
		return Upload{}, errors.New(resp.Error.Message)
	}

	return Upload{Path: resp.SecureURL, Filename: resp.PublicID, Remote: true}, nil
}

// Delete destroys the object addressed by category and filename. The public
// id is reconstructed the same way Put namespaces it.
func (s *CloudinaryStore) Delete(ctx context.Context, category, filename string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: rootFolder + "/" + category + "/" + filename,
	})
	if err != nil {
		return err
	}
	if resp.Result == "not found" {
		return ErrNotFound
	}
	return nil
}

// Describe reports the remote strategy without exposing credential values.
func (s *CloudinaryStore) Describe() Status {
	return Status{
		CloudinaryConfigured: true,
		CloudName:            s.cloudName,
		StorageType:          "Cloudinary Cloud",
	}
}
