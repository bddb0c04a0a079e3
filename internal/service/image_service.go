package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog/log"

	"github.com/dealspro/dealspro_api/internal/config"
	"github.com/dealspro/dealspro_api/internal/utils"
)

// MaxImageSize is the largest deal image accepted for upload.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageService uploads deal images to S3 using AWS Signature V4.
type ImageService struct {
	bucket   string
	region   string
	endpoint string
	creds    aws.CredentialsProvider
	signer   *v4.Signer
	client   *http.Client
	now      func() time.Time
}

// NewImageService creates an image service. Without a bucket the service is
// returned disabled and every upload fails with utils.ErrUploadDisabled.
func NewImageService(ctx context.Context, cfg config.S3Config) (*ImageService, error) {
	if cfg.Bucket == "" {
		log.Warn().Msg("S3_BUCKET not set - deal image upload disabled")
		return NewDisabledImageService(), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newImageService(cfg, awsCfg.Credentials), nil
}

// NewDisabledImageService returns a service that rejects every upload.
func NewDisabledImageService() *ImageService {
	return &ImageService{}
}

func newImageService(cfg config.S3Config, creds aws.CredentialsProvider) *ImageService {
	return &ImageService{
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		creds:    creds,
		signer:   v4.NewSigner(),
		client:   &http.Client{Timeout: 60 * time.Second},
		now:      time.Now,
	}
}

// Enabled reports whether uploads are configured.
func (s *ImageService) Enabled() bool {
	return s.bucket != ""
}

// UploadDealImage stores data under a fresh key and returns its public URL.
func (s *ImageService) UploadDealImage(ctx context.Context, contentType string, data []byte) (string, error) {
	if !s.Enabled() {
		return "", utils.ErrUploadDisabled
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", utils.ErrUnsupportedImage, contentType)
	}
	if len(data) == 0 || len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: size %d bytes", utils.ErrUnsupportedImage, len(data))
	}

	key := fmt.Sprintf("deals/%s%s", utils.GenerateID(), ext)
	return s.uploadFile(ctx, key, data, contentType)
}

func (s *ImageService) uploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	url := s.ObjectURL(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	payloadHash := sha256Hex(data)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)
	req.ContentLength = int64(len(data))

	creds, err := s.creds.Retrieve(ctx)
	if err != nil {
		return "", fmt.Errorf("retrieve aws credentials: %w", err)
	}
	if err := s.signer.SignHTTP(ctx, creds, req, payloadHash, "s3", s.region, s.now().UTC()); err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to upload to S3")
		return "", fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		log.Error().
			Str("key", key).
			Int("status", resp.StatusCode).
			Str("response", string(body)).
			Msg("S3 upload failed")
		return "", fmt.Errorf("S3 upload failed: %s", string(body))
	}

	log.Info().Str("key", key).Msg("Successfully uploaded deal image")
	return url, nil
}

// ObjectURL returns the URL for an S3 object. A custom endpoint uses
// path-style addressing.
func (s *ImageService) ObjectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func sha256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
