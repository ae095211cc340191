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

// ItemHandler xử lý các request quản lý nguyên liệu
type ItemHandler struct {
	*basehdl.BaseHandler[models.Item, catalogdto.ItemCreateInput, catalogdto.ItemUpdateInput]
	itemService *catalogsvc.ItemService
}

// NewItemHandler tạo instance mới của ItemHandler
func NewItemHandler() (*ItemHandler, error) {
	itemService, err := catalogsvc.NewItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Item, catalogdto.ItemCreateInput, catalogdto.ItemUpdateInput](itemService)
	return &ItemHandler{
		BaseHandler: baseHandler,
		itemService: itemService,
	}, nil
}

// Find trả về các nguyên liệu của danh mục trong query ?category=, sắp theo index.
// Che phương thức Find của BaseHandler vì cần lọc theo danh mục và giữ thứ tự hiển thị.
func (h *ItemHandler) Find(c fiber.Ctx) error {
	categoryName := c.Query("category")
	if categoryName == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số category", common.StatusBadRequest, nil))
		return nil
	}
	items, err := h.itemService.ListByCategory(c.Context(), categoryName)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, items, nil)
	return nil
}

// InsertOne tạo nguyên liệu mới, index do service tự gán.
// Che phương thức InsertOne của BaseHandler.
func (h *ItemHandler) InsertOne(c fiber.Ctx) error {
	var input catalogdto.ItemCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	item, err := h.itemService.Create(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, item, nil)
	return nil
}

// UpdateById cập nhật nguyên liệu theo id, xóa ảnh cũ khi đổi ảnh.
// Che phương thức UpdateById của BaseHandler.
func (h *ItemHandler) UpdateById(c fiber.Ctx) error {
	objID, err := h.paramObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input catalogdto.ItemUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	item, err := h.itemService.Update(c.Context(), objID, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, item, nil)
	return nil
}

// DeleteById xóa nguyên liệu theo id kèm file ảnh.
// Che phương thức DeleteById của BaseHandler.
func (h *ItemHandler) DeleteById(c fiber.Ctx) error {
	objID, err := h.paramObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.itemService.Delete(c.Context(), objID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleMoveUp đẩy nguyên liệu lên một vị trí trong danh mục.
// Query: itemId, categoryName. Đầu danh sách là no-op.
func (h *ItemHandler) HandleMoveUp(c fiber.Ctx) error {
	objID, categoryName, err := h.moveParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	items, err := h.itemService.MoveUp(c.Context(), objID, categoryName)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, items, nil)
	return nil
}

// HandleMoveDown đẩy nguyên liệu xuống một vị trí trong danh mục.
// Query: itemId, categoryName. Cuối danh sách là no-op.
func (h *ItemHandler) HandleMoveDown(c fiber.Ctx) error {
	objID, categoryName, err := h.moveParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	items, err := h.itemService.MoveDown(c.Context(), objID, categoryName)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, items, nil)
	return nil
}

// paramObjectID lấy và parse param :id thành ObjectID
func (h *ItemHandler) paramObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err)
	}
	return objID, nil
}

// moveParams lấy itemId và categoryName từ query của các route move-up/move-down
func (h *ItemHandler) moveParams(c fiber.Ctx) (primitive.ObjectID, string, error) {
	categoryName := c.Query("categoryName")
	if categoryName == "" {
		return primitive.NilObjectID, "", common.NewError(common.ErrCodeValidationInput, "Thiếu tham số categoryName", common.StatusBadRequest, nil)
	}
	objID, err := primitive.ObjectIDFromHex(c.Query("itemId"))
	if err != nil {
		return primitive.NilObjectID, "", common.NewError(common.ErrCodeValidationFormat, "itemId không đúng định dạng", common.StatusBadRequest, err)
	}
	return objID, categoryName, nil
}
