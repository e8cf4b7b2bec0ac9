// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// batas ukuran upload di controller (guard ringan)
const MaxUploadSize = int64(5 * 1024 * 1024)

type OSSService struct {
	client     *oss.Client
	bucket     *oss.Bucket
	BucketName string
	Endpoint   string
	Prefix     string // mis. "uploads/"
}

// NewOSSServiceFromEnv membuat service dari ENV:
// OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET, OSS_BUCKET.
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("konfigurasi OSS belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &OSSService{
		client:     client,
		bucket:     bucket,
		BucketName: bucketName,
		Endpoint:   strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://"),
		Prefix:     prefix,
	}, nil
}

// randomObjectKey membuat nama file acak anti-tabrakan dengan
// mempertahankan ekstensi asli: projects/8e7c...-f1.png
func (s *OSSService) randomObjectKey(dir, original string) string {
	ext := strings.ToLower(path.Ext(original))
	dir = strings.Trim(dir, "/")
	return fmt.Sprintf("%s%s/%s%s", s.Prefix, dir, uuid.NewString(), ext)
}

// UploadBytesToDir menaruh byte mentah dengan key acak, return objectKey.
func (s *OSSService) UploadBytesToDir(ctx context.Context, dir, filename, contentType string, data []byte) (string, error) {
	key := s.randomObjectKey(dir, filename)
	opts := []oss.Option{oss.ContentType(contentType)}
	if err := s.bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return key, nil
}

// UploadFromFormFileToDir upload file multipart apa adanya (tanpa re-encode).
func (s *OSSService) UploadFromFormFileToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh.Size > MaxUploadSize {
		return "", "", fmt.Errorf("ukuran file melebihi %d byte", MaxUploadSize)
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(f); err != nil {
		return "", "", err
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	key, err := s.UploadBytesToDir(ctx, dir, fh.Filename, ct, buf.Bytes())
	if err != nil {
		return "", "", err
	}
	return key, ct, nil
}

// PublicURL membangun URL publik sebuah object key.
func (s *OSSService) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, s.Endpoint, key)
}

// KeyFromPublicURL mengekstrak object key dari URL publik bucket ini.
func (s *OSSService) KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	host := fmt.Sprintf("%s.%s", s.BucketName, s.Endpoint)
	if u.Host != host {
		return "", fmt.Errorf("URL bukan milik bucket %s", s.BucketName)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

// DeleteByPublicURL menghapus object berdasarkan URL publiknya.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.bucket.DeleteObject(key)
}
