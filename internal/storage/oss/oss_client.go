// Package oss uploads objects to Aliyun OSS with a hand-built signed PUT.
// The generic SDK path cannot produce this backend's canonical string, so
// the request and its Authorization header are assembled here.
package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"plaindoc/internal/config"
	"plaindoc/internal/domain"
	"plaindoc/internal/port"
	"plaindoc/internal/publicurl"
)

const (
	regionHostSuffix = "aliyuncs.com"
	authScheme       = "OSS"
)

type ossClient struct {
	cfg        config.OSSConfig
	signer     port.Signer
	httpClient *http.Client
	uploadBase *url.URL
	now        func() time.Time
}

// New validates the OSS credential set and derives the bucket-subdomain
// upload base URL. A missing required field yields a domain.ConfigError
// before any request is sent.
func New(cfg config.OSSConfig, signer port.Signer) (port.ObjectUploader, error) {
	switch {
	case cfg.AccessKeyID == "":
		return nil, &domain.ConfigError{Provider: domain.ProviderOSS, Field: "accessKeyId"}
	case cfg.AccessKeySecret == "":
		return nil, &domain.ConfigError{Provider: domain.ProviderOSS, Field: "accessKeySecret"}
	case cfg.Bucket == "":
		return nil, &domain.ConfigError{Provider: domain.ProviderOSS, Field: "bucket"}
	case strings.TrimSpace(cfg.Endpoint) == "" && strings.TrimSpace(cfg.Region) == "":
		return nil, &domain.ConfigError{Provider: domain.ProviderOSS, Field: "endpoint or region"}
	}

	base, err := uploadBaseURL(cfg)
	if err != nil {
		return nil, err
	}

	return &ossClient{
		cfg:        cfg,
		signer:     signer,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		uploadBase: base,
		now:        time.Now,
	}, nil
}

// uploadBaseURL normalizes the configured endpoint (or derives one from the
// region) and ensures the bucket is the leading host label. Scheme and any
// explicit port are preserved.
func uploadBaseURL(cfg config.OSSConfig) (*url.URL, error) {
	raw := strings.TrimSpace(cfg.Endpoint)
	if raw == "" {
		raw = fmt.Sprintf("https://%s.%s", strings.TrimSpace(cfg.Region), regionHostSuffix)
	} else if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing oss endpoint: %w", err)
	}
	if !strings.HasPrefix(u.Hostname(), cfg.Bucket+".") {
		u.Host = cfg.Bucket + "." + u.Host
	}
	return u, nil
}

// encodeKey percent-encodes each /-delimited segment independently so
// literal slashes stay path separators.
func encodeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func (c *ossClient) Upload(ctx context.Context, obj port.Object) (*domain.UploadResult, error) {
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	httpDate := c.now().UTC().Format(http.TimeFormat)

	// The canonical string carries the UNENCODED key even though the request
	// URL uses the encoded one; the backend verifies against the decoded
	// path. Signing the encoded key fails authentication.
	canonical := fmt.Sprintf("PUT\n\n%s\n%s\n/%s/%s", contentType, httpDate, c.cfg.Bucket, obj.Key)
	signature := c.signer.Sign(c.cfg.AccessKeySecret, canonical)

	target := c.uploadBase.String() + "/" + encodeKey(obj.Key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(obj.Data))
	if err != nil {
		return nil, fmt.Errorf("building oss request: %w", err)
	}
	req.ContentLength = int64(len(obj.Data))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Date", httpDate)
	req.Header.Set("Authorization", fmt.Sprintf("%s %s:%s", authScheme, c.cfg.AccessKeyID, signature))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oss put object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &domain.UploadError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	resolved := publicurl.Resolve(c.cfg.PublicBaseURL, obj.Key, c.uploadBase.String())
	return &domain.UploadResult{Provider: domain.ProviderOSS, Key: obj.Key, URL: resolved}, nil
}
