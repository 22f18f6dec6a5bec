package service

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ReceiptArchive uploads receipt PDFs to an S3 bucket so the download link
// keeps working after the local retention purge.
type ReceiptArchive struct {
	BucketName string
	Client     *s3.Client
}

// NewReceiptArchive initializes the S3 receipt archive.
func NewReceiptArchive() (*ReceiptArchive, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(regionOrDefault()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %v", err)
	}

	bucketName := os.Getenv("S3_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is not set in environment variables")
	}

	client := s3.NewFromConfig(cfg)

	return &ReceiptArchive{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

func regionOrDefault() string {
	if region := os.Getenv("AWS_REGION"); region != "" {
		return region
	}
	return "us-east-1"
}

// ArchivePDF uploads one receipt PDF and returns its public URL.
func (a *ReceiptArchive) ArchivePDF(ctx context.Context, receiptID string, pdf []byte) (string, error) {
	key := fmt.Sprintf("receipts/%s.pdf", receiptID)

	_, err := a.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload receipt to S3: %v", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", a.BucketName, key)
	return url, nil
}
