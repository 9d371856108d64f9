package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ReceiptStore persists a rendered receipt and returns where it can be fetched from.
type ReceiptStore interface {
	Save(ctx context.Context, name string, pdf []byte) (string, error)
	Delete(ctx context.Context, location string) error
}

// LocalReceiptStore writes receipts under Dir.
type LocalReceiptStore struct {
	Dir string
}

func (s *LocalReceiptStore) Save(_ context.Context, name string, pdf []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	p := filepath.Join(s.Dir, filepath.Base(name))
	if err := os.WriteFile(p, pdf, 0o644); err != nil {
		return "", err
	}
	return p, nil
}

func (s *LocalReceiptStore) Delete(_ context.Context, location string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(location)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// R2ReceiptStore uploads receipts to a Cloudflare R2 bucket through the S3 API.
type R2ReceiptStore struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewR2ReceiptStore(ctx context.Context, accountID, accessKeyID, secretAccessKey, bucket, publicBase string) (*R2ReceiptStore, error) {
	if accountID == "" || bucket == "" {
		return nil, fmt.Errorf("missing required R2 settings")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	if publicBase == "" {
		publicBase = endpoint + "/" + bucket
	}
	return &R2ReceiptStore{client: client, bucket: bucket, publicBase: publicBase}, nil
}

func (s *R2ReceiptStore) Save(ctx context.Context, name string, pdf []byte) (string, error) {
	key := path.Base(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}
	return publicURL(s.publicBase, key), nil
}

// Delete removes the object behind a URL returned by Save.
func (s *R2ReceiptStore) Delete(ctx context.Context, fileURL string) error {
	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("invalid file URL: %w", err)
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Base(u.Path)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete R2 object: %w", err)
	}
	return nil
}

func publicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(key)
}
