// Package r2 uploads objects to Cloudflare R2 through its S3-compatible
// API. Request signing (SigV4) is delegated to the AWS SDK client.
package r2

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"plaindoc/internal/config"
	"plaindoc/internal/domain"
	"plaindoc/internal/port"
	"plaindoc/internal/publicurl"
)

const storageDomain = "r2.cloudflarestorage.com"

type r2Client struct {
	client   *s3.Client
	cfg      config.R2Config
	endpoint string
}

// New validates the R2 credential set and builds the S3-compatible client.
// A missing required field yields a domain.ConfigError before any request
// is sent.
func New(cfg config.R2Config) (port.ObjectUploader, error) {
	switch {
	case cfg.AccountID == "":
		return nil, &domain.ConfigError{Provider: domain.ProviderR2, Field: "accountId"}
	case cfg.AccessKeyID == "":
		return nil, &domain.ConfigError{Provider: domain.ProviderR2, Field: "accessKeyId"}
	case cfg.SecretAccessKey == "":
		return nil, &domain.ConfigError{Provider: domain.ProviderR2, Field: "secretAccessKey"}
	case cfg.Bucket == "":
		return nil, &domain.ConfigError{Provider: domain.ProviderR2, Field: "bucket"}
	}

	endpoint := fmt.Sprintf("https://%s.%s", cfg.AccountID, storageDomain)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &r2Client{client: client, cfg: cfg, endpoint: endpoint}, nil
}

func (c *r2Client) Upload(ctx context.Context, obj port.Object) (*domain.UploadResult, error) {
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// The body is a fixed-length bytes.Reader so the SDK never takes a
	// chunked/streaming transfer-encoding path.
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.cfg.Bucket),
		Key:           aws.String(obj.Key),
		Body:          bytes.NewReader(obj.Data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(obj.Data))),
	})
	if err != nil {
		return nil, fmt.Errorf("r2 put object: %w", err)
	}

	var url string
	if strings.TrimSpace(c.cfg.PublicBaseURL) != "" {
		url = publicurl.Resolve(c.cfg.PublicBaseURL, obj.Key, c.endpoint)
	} else {
		url = publicurl.Resolve("", path.Join(c.cfg.Bucket, obj.Key), c.endpoint)
	}

	return &domain.UploadResult{Provider: domain.ProviderR2, Key: obj.Key, URL: url}, nil
}
