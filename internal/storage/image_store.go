// Package storage quản lý ảnh nguyên liệu lưu trên đĩa, chia thư mục theo danh mục.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Lmineck/ordering-system/internal/common"
	"github.com/Lmineck/ordering-system/internal/utility"
)

// URLPrefix là prefix public của ảnh đã upload (map sang thư mục gốc trên đĩa).
const URLPrefix = "/uploads"

// contentTypes map phần mở rộng file sang Content-Type khi serve ảnh.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// ImageStore lưu và phục vụ ảnh nguyên liệu dưới baseDir/<danh mục>/.
type ImageStore struct {
	baseDir string
}

// NewImageStore tạo ImageStore với thư mục gốc cho trước.
func NewImageStore(baseDir string) *ImageStore {
	return &ImageStore{baseDir: baseDir}
}

// sanitizeSegment chặn path traversal trong tên danh mục / tên file.
func sanitizeSegment(segment string) error {
	if segment == "" || strings.Contains(segment, "..") ||
		strings.ContainsAny(segment, `/\`) {
		return common.NewError(common.ErrCodeValidationFormat, "Tên không hợp lệ: "+segment, common.StatusBadRequest, nil)
	}
	return nil
}

// Save lưu file upload thành <baseDir>/<categoryName>/<itemName>_<unit>_<yyyyMMdd_HHmmss>.<ext>
// và trả về URL public dạng /uploads/<categoryName>/<filename>.
func (s *ImageStore) Save(categoryName, itemName, unit string, fileHeader *multipart.FileHeader) (string, error) {
	if err := sanitizeSegment(categoryName); err != nil {
		return "", err
	}
	if err := sanitizeSegment(itemName); err != nil {
		return "", err
	}
	if err := sanitizeSegment(unit); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		return "", common.NewError(common.ErrCodeValidationFormat, "File không có phần mở rộng", common.StatusBadRequest, nil)
	}

	dir := filepath.Join(s.baseDir, categoryName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%s%s", itemName, unit, utility.FormatImageTimestamp(time.Now()), ext)
	dstPath := filepath.Join(dir, filename)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": dstPath}).Info("ImageStore: Lưu ảnh thành công")
	return URLPrefix + "/" + categoryName + "/" + filename, nil
}

// Resolve chuyển URL ảnh (/uploads/...) thành đường dẫn tuyệt đối trên đĩa
// kèm Content-Type theo phần mở rộng. Trả về ErrNotFound nếu file không tồn tại.
func (s *ImageStore) Resolve(urlPath string) (string, string, error) {
	rel := strings.TrimPrefix(urlPath, URLPrefix)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return "", "", common.ErrNotFound
	}

	// Chặn path traversal: đường dẫn sau khi clean phải nằm trong baseDir
	cleaned := filepath.Clean(rel)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", "", common.NewError(common.ErrCodeValidationFormat, "Đường dẫn không hợp lệ", common.StatusBadRequest, nil)
	}

	fullPath := filepath.Join(s.baseDir, cleaned)
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return "", "", common.ErrNotFound
	}

	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(fullPath))]
	if !ok {
		contentType = "application/octet-stream"
	}
	return fullPath, contentType, nil
}

// DeleteByURL xóa file ảnh theo URL (/uploads/...). URL rỗng hoặc file
// không tồn tại đều là no-op.
func (s *ImageStore) DeleteByURL(imgURL string) error {
	if imgURL == "" {
		return nil
	}
	fullPath, _, err := s.Resolve(imgURL)
	if err != nil {
		return nil
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	return nil
}

// DeleteCategoryDir xóa toàn bộ thư mục ảnh của một danh mục (dùng khi cascade delete).
func (s *ImageStore) DeleteCategoryDir(categoryName string) error {
	if err := sanitizeSegment(categoryName); err != nil {
		return err
	}
	dir := filepath.Join(s.baseDir, categoryName)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete category image dir: %w", err)
	}
	return nil
}
