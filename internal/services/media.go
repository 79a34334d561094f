package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaAsset is what the admin UI stores after an upload.
type MediaAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Size     int    `json:"size"`
}

type DestroyResult struct {
	Result string `json:"result"`
}

type UploadOptions struct {
	Folder       string
	PublicID     string
	ResourceType string
}

// MediaStore hosts uploaded files outside this service.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader, opts UploadOptions) (MediaAsset, error)
	UploadData(ctx context.Context, data string, opts UploadOptions) (MediaAsset, error)
	Destroy(ctx context.Context, publicID, resourceType string) (DestroyResult, error)
}

var ErrMediaDisabled = errors.New("media store is not configured")

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{cld: cld}, nil
}

func (c *CloudinaryStore) Upload(ctx context.Context, file io.Reader, opts UploadOptions) (MediaAsset, error) {
	return c.upload(ctx, file, opts)
}

// UploadData uploads a data URI or a remote URL.
func (c *CloudinaryStore) UploadData(ctx context.Context, data string, opts UploadOptions) (MediaAsset, error) {
	return c.upload(ctx, data, opts)
}

func (c *CloudinaryStore) upload(ctx context.Context, file interface{}, opts UploadOptions) (MediaAsset, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     opts.PublicID,
		Folder:       opts.Folder,
		ResourceType: opts.ResourceType,
	})
	if err != nil {
		return MediaAsset{}, err
	}
	if res.Error.Message != "" {
		return MediaAsset{}, errors.New(res.Error.Message)
	}
	return MediaAsset{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
		Format:   res.Format,
		Size:     res.Bytes,
	}, nil
}

func (c *CloudinaryStore) Destroy(ctx context.Context, publicID, resourceType string) (DestroyResult, error) {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return DestroyResult{}, err
	}
	if res.Error.Message != "" {
		return DestroyResult{}, errors.New(res.Error.Message)
	}
	return DestroyResult{Result: res.Result}, nil
}

// DisabledMediaStore rejects every call. It is used when no media
// credentials are configured.
type DisabledMediaStore struct{}

func (DisabledMediaStore) Upload(context.Context, io.Reader, UploadOptions) (MediaAsset, error) {
	return MediaAsset{}, ErrMediaDisabled
}

func (DisabledMediaStore) UploadData(context.Context, string, UploadOptions) (MediaAsset, error) {
	return MediaAsset{}, ErrMediaDisabled
}

func (DisabledMediaStore) Destroy(context.Context, string, string) (DestroyResult, error) {
	return DestroyResult{}, ErrMediaDisabled
}

// SinglePublicID names a single uploaded file after its folder, the upload
// time and the file name up to its first dot.
func SinglePublicID(folder string, at time.Time, filename string) string {
	base := filepath.Base(filename)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return fmt.Sprintf("%s_%d_%s", folder, at.UnixMilli(), base)
}

// BatchPublicID names the index-th file of a multi-file upload.
func BatchPublicID(folder string, at time.Time, index int) string {
	return fmt.Sprintf("%s_%d_%d", folder, at.UnixMilli(), index)
}
