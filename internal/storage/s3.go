package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the part of the S3 client the archive needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ExportArchive copies client exports into an S3 bucket
type ExportArchive struct {
	client ObjectPutter
	bucket string
	prefix string
}

func NewExportArchive(client ObjectPutter, bucket, prefix string) *ExportArchive {
	return &ExportArchive{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Key returns the object key a file with the given name is stored under.
func (a *ExportArchive) Key(fileName string) string {
	if a.prefix == "" {
		return fileName
	}
	return path.Join(a.prefix, fileName)
}

// Upload stores data under the archive prefix and returns the object key.
func (a *ExportArchive) Upload(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	key := a.Key(fileName)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, a.bucket, err)
	}

	return key, nil
}

// URI is the s3:// location of key in the archive bucket.
func (a *ExportArchive) URI(key string) string {
	return fmt.Sprintf("s3://%s/%s", a.bucket, key)
}
