package cataloghdl

import (
	"os"

	"github.com/gofiber/fiber/v3"

	"github.com/Lmineck/ordering-system/internal/api/middleware"
	"github.com/Lmineck/ordering-system/internal/common"
	"github.com/Lmineck/ordering-system/internal/global"
	"github.com/Lmineck/ordering-system/internal/storage"
)

// ImageHandler xử lý upload và serve ảnh nguyên liệu
type ImageHandler struct {
	images *storage.ImageStore
}

// NewImageHandler tạo instance mới của ImageHandler
func NewImageHandler() (*ImageHandler, error) {
	return &ImageHandler{
		images: storage.NewImageStore(global.MongoDB_ServerConfig.UploadDir),
	}, nil
}

// HandleUpload nhận file multipart (field "file") kèm categoryName/itemName/unit,
// lưu vào thư mục của danh mục và trả về URL public của ảnh.
func (h *ImageHandler) HandleUpload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Thiếu file upload", common.StatusBadRequest, err))
		return nil
	}

	categoryName := c.FormValue("categoryName")
	itemName := c.FormValue("itemName")
	unit := c.FormValue("unit")
	if categoryName == "" || itemName == "" || unit == "" {
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Thiếu categoryName, itemName hoặc unit", common.StatusBadRequest, nil))
		return nil
	}

	url, err := h.images.Save(categoryName, itemName, unit, fileHeader)
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}

	middleware.JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    fiber.Map{"url": url},
		"status":  "success",
	})
	return nil
}

// HandleServe trả về nội dung file ảnh theo query ?path=/uploads/...
// Content-Type được suy ra từ phần mở rộng, file không tồn tại trả về 404.
func (h *ImageHandler) HandleServe(c fiber.Ctx) error {
	path := c.Query("path")
	fullPath, contentType, err := h.images.Resolve(path)
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		middleware.HandleErrorResponse(c, common.ErrNotFound)
		return nil
	}

	c.Set("Content-Type", contentType)
	return c.Status(common.StatusOK).Send(data)
}
