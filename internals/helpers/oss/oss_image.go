// internals/helpers/oss/oss_image.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

// decodeImage men-decode jpeg/png/webp dari []byte dengan sniff MIME.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}
	// fallback ke ekstensi file
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format gambar tidak didukung (%s)", ct)
}

// IsImageFilename cek kasar berdasarkan ekstensi.
func IsImageFilename(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// UploadImageToDir: re-encode gambar ke WebP (resize keep-aspect sesuai ENV)
// lalu upload dengan key acak. Return URL publik.
func UploadImageToDir(ctx context.Context, s *OSSService, dir string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi %d byte", MaxUploadSize)
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(f); err != nil {
		return "", err
	}

	img, err := decodeImage(buf.Bytes(), fh.Filename)
	if err != nil {
		return "", err
	}

	maxW := envInt("IMAGE_WEBP_MAX_W", 1600)
	maxH := envInt("IMAGE_WEBP_MAX_H", 1600)
	quality := envFloat("IMAGE_WEBP_QUALITY", 80)

	b := img.Bounds()
	if b.Dx() > maxW || b.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: quality}); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(fh.Filename, path.Ext(fh.Filename))
	key, err := s.UploadBytesToDir(ctx, dir, base+".webp", "image/webp", out.Bytes())
	if err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}
