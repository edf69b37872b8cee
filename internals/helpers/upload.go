// helpers/upload.go
package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/amdmunif/sood-wsb/internals/configs"
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(prefix, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s_%s_%s_%s", prefix, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// SaveUploadedFile menyimpan file apa adanya ke UPLOADS_DIR dan
// mengembalikan URL publiknya (mis. /uploads/xxx.pdf).
func SaveUploadedFile(prefix string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("gagal membaca file: %w", err)
	}
	return writeUpload(GenerateUniqueFilename(prefix, fh.Filename), buf.Bytes())
}

// SaveUploadedImage meng-decode gambar, menyusutkan sisi terpanjang ke
// maksimal 1600px, lalu re-encode ke webp quality 85 sebelum disimpan.
func SaveUploadedImage(prefix string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}
	if b := img.Bounds(); b.Dx() > 1600 || b.Dy() > 1600 {
		img = imaging.Fit(img, 1600, 1600, imaging.CatmullRom)
	}

	webpBuf := new(bytes.Buffer)
	if err := webp.Encode(webpBuf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename)) + ".webp"
	return writeUpload(GenerateUniqueFilename(prefix, base), webpBuf.Bytes())
}

func writeUpload(filename string, data []byte) (string, error) {
	dir := configs.UploadsDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return configs.UploadsBase + "/" + filename, nil
}
