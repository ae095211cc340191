package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestImage tạo file ảnh giả trong baseDir để test Resolve/Delete.
func writeTestImage(t *testing.T, baseDir, category, filename string) string {
	t.Helper()
	dir := filepath.Join(baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Không tạo được thư mục test: %v", err)
	}
	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, []byte("fake-image"), 0o644); err != nil {
		t.Fatalf("Không ghi được file test: %v", err)
	}
	return fullPath
}

func TestSanitizeSegment(t *testing.T) {
	valid := []string{"과일류", "trái cây", "egg_box"}
	for _, segment := range valid {
		if err := sanitizeSegment(segment); err != nil {
			t.Errorf("sanitizeSegment(%q) phải hợp lệ, nhận được lỗi: %v", segment, err)
		}
	}

	invalid := []string{"", "..", "../etc", "a/b", `a\b`}
	for _, segment := range invalid {
		if err := sanitizeSegment(segment); err == nil {
			t.Errorf("sanitizeSegment(%q) phải bị từ chối", segment)
		}
	}
}

func TestResolve(t *testing.T) {
	baseDir := t.TempDir()
	store := NewImageStore(baseDir)
	expected := writeTestImage(t, baseDir, "과일류", "사과_kg_20250307_090530.png")

	fullPath, contentType, err := store.Resolve("/uploads/과일류/사과_kg_20250307_090530.png")
	if err != nil {
		t.Fatalf("Resolve phải thành công với file tồn tại: %v", err)
	}
	if fullPath != expected {
		t.Errorf("Mong đợi đường dẫn %s, nhận được %s", expected, fullPath)
	}
	if contentType != "image/png" {
		t.Errorf("Mong đợi Content-Type image/png, nhận được %s", contentType)
	}
}

func TestResolve_FileKhongTonTai(t *testing.T) {
	store := NewImageStore(t.TempDir())
	if _, _, err := store.Resolve("/uploads/과일류/missing.png"); err == nil {
		t.Error("Resolve phải trả về lỗi khi file không tồn tại")
	}
}

func TestResolve_ChanPathTraversal(t *testing.T) {
	store := NewImageStore(t.TempDir())
	paths := []string{
		"/uploads/../etc/passwd",
		"/uploads/..%2Fetc",
		"/uploads/",
		"",
	}
	for _, p := range paths {
		if _, _, err := store.Resolve(p); err == nil {
			t.Errorf("Resolve(%q) phải bị từ chối", p)
		}
	}
}

func TestResolve_ContentTypeMacDinh(t *testing.T) {
	baseDir := t.TempDir()
	store := NewImageStore(baseDir)
	writeTestImage(t, baseDir, "khác", "file.bin")

	_, contentType, err := store.Resolve("/uploads/khác/file.bin")
	if err != nil {
		t.Fatalf("Resolve phải thành công: %v", err)
	}
	if contentType != "application/octet-stream" {
		t.Errorf("Phần mở rộng lạ phải dùng octet-stream, nhận được %s", contentType)
	}
}

func TestDeleteByURL(t *testing.T) {
	baseDir := t.TempDir()
	store := NewImageStore(baseDir)
	fullPath := writeTestImage(t, baseDir, "과일류", "사과_kg_20250307_090530.jpg")

	if err := store.DeleteByURL("/uploads/과일류/사과_kg_20250307_090530.jpg"); err != nil {
		t.Fatalf("DeleteByURL phải thành công: %v", err)
	}
	if _, err := os.Stat(fullPath); !os.IsNotExist(err) {
		t.Error("File phải bị xóa sau DeleteByURL")
	}

	// URL rỗng và file không tồn tại đều là no-op
	if err := store.DeleteByURL(""); err != nil {
		t.Errorf("DeleteByURL với URL rỗng phải là no-op, nhận được lỗi: %v", err)
	}
	if err := store.DeleteByURL("/uploads/과일류/missing.jpg"); err != nil {
		t.Errorf("DeleteByURL với file không tồn tại phải là no-op, nhận được lỗi: %v", err)
	}
}

func TestDeleteCategoryDir(t *testing.T) {
	baseDir := t.TempDir()
	store := NewImageStore(baseDir)
	writeTestImage(t, baseDir, "과일류", "a.png")
	writeTestImage(t, baseDir, "과일류", "b.png")

	if err := store.DeleteCategoryDir("과일류"); err != nil {
		t.Fatalf("DeleteCategoryDir phải thành công: %v", err)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "과일류")); !os.IsNotExist(err) {
		t.Error("Thư mục danh mục phải bị xóa")
	}

	if err := store.DeleteCategoryDir("../etc"); err == nil {
		t.Error("DeleteCategoryDir phải từ chối tên chứa path traversal")
	}
}
