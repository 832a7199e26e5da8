package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// s3API is the subset of the S3 client the image store uses
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3ImageStore offloads data URI images to S3 and persists their public URL instead
type S3ImageStore struct {
	client  s3API
	bucket  string
	region  string
	baseURL string
	now     func() time.Time
}

// NewS3ImageStore creates a new S3 image store. baseURL defaults to the bucket's public endpoint.
func NewS3ImageStore(ctx context.Context, region, bucket, baseURL string) (*S3ImageStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return newS3ImageStore(s3.NewFromConfig(cfg), region, bucket, baseURL), nil
}

func newS3ImageStore(client s3API, region, bucket, baseURL string) *S3ImageStore {
	return &S3ImageStore{
		client:  client,
		bucket:  bucket,
		region:  region,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
	}
}

// Store uploads a data URI image and returns its URL. Remote URLs are kept as they are.
func (u *S3ImageStore) Store(ctx context.Context, userID, kind, image string) (string, error) {
	if IsRemoteURL(image) {
		return image, nil
	}

	decoded, err := ParseDataURI(image)
	if err != nil {
		return "", err
	}

	// images/{kind}/{year}/{month}/{userID}/{fileID}.ext
	now := u.now().UTC()
	key := fmt.Sprintf("images/%s/%d/%02d/%s/%s%s",
		kind, now.Year(), now.Month(), userID, uuid.New().String(), decoded.Extension)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(decoded.Data),
		ContentType:  aws.String(decoded.MediaType),
		CacheControl: aws.String("max-age=31536000"),
		Metadata: map[string]string{
			"user-id":          userID,
			"image-kind":       kind,
			"upload-timestamp": now.Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}

// CheckBucketAccess verifies that we can access the S3 bucket
func (u *S3ImageStore) CheckBucketAccess(ctx context.Context) error {
	_, err := u.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(u.bucket),
	})
	if err != nil {
		return fmt.Errorf("cannot access S3 bucket %s: %w", u.bucket, err)
	}

	return nil
}
