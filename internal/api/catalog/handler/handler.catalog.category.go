// Package cataloghdl xử lý request cho danh mục, nguyên liệu và ảnh nguyên liệu.
package cataloghdl

import (
	"fmt"

	catalogdto "github.com/Lmineck/ordering-system/internal/api/catalog/dto"
	models "github.com/Lmineck/ordering-system/internal/api/catalog/models"
	catalogsvc "github.com/Lmineck/ordering-system/internal/api/catalog/service"
	basehdl "github.com/Lmineck/ordering-system/internal/api/base/handler"
	"github.com/Lmineck/ordering-system/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryHandler xử lý các request quản lý danh mục nguyên liệu
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService)
	return &CategoryHandler{
		BaseHandler:     baseHandler,
		categoryService: categoryService,
	}, nil
}

// InsertOne tạo danh mục mới, từ chối khi trùng tên.
// Che phương thức InsertOne của BaseHandler để thêm kiểm tra trùng tên.
func (h *CategoryHandler) InsertOne(c fiber.Ctx) error {
	var input catalogdto.CategoryCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	category, err := h.categoryService.Create(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, category, nil)
	return nil
}

// DeleteById xóa danh mục kèm cascade nguyên liệu và ảnh.
// Che phương thức DeleteById của BaseHandler.
func (h *CategoryHandler) DeleteById(c fiber.Ctx) error {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	err = h.categoryService.Delete(c.Context(), objID)
	h.HandleResponse(c, nil, err)
	return nil
}
