package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/allometrik/clm-platform-sub000/config"
	"github.com/allometrik/clm-platform-sub000/model"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ExportService assembles contract documents from resolved clauses and
// uploads them to object storage, handing back a presigned download
// URL. Output is plain text; Word/PDF rendering is out of scope.
type ExportService struct {
	client *minio.Client
	bucket string
	config *config.ExportConfig
}

func NewExportService(cfg *config.ExportConfig) (*ExportService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &ExportService{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *ExportService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// RenderDocument produces the plain-text document body for a contract
// and its resolved clauses, in section order.
func RenderDocument(contract *model.Contract, clauses []*model.Clause) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", contract.Title)
	fmt.Fprintf(&b, "Cliente: %s\n", contract.Client)
	fmt.Fprintf(&b, "Versión: %d\n\n", contract.CurrentVersion)

	for i, c := range clauses {
		fmt.Fprintf(&b, "%d. %s\n%s\n\n", i+1, c.Title, c.Content)
	}
	return b.String()
}

// Export uploads the rendered document and returns a presigned URL.
func (s *ExportService) Export(ctx context.Context, contract *model.Contract, clauses []*model.Clause) (string, error) {
	body := RenderDocument(contract, clauses)
	objectName := fmt.Sprintf("exports/%s/%s.txt", contract.ID, time.Now().Format("20060102-150405"))

	reader := strings.NewReader(body)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, int64(len(body)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	expiry := time.Duration(s.config.ExpireDays) * 24 * time.Hour
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}
