// Package catalogsvc - service nguyên liệu (Item).
package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	catalogdto "github.com/Lmineck/ordering-system/internal/api/catalog/dto"
	models "github.com/Lmineck/ordering-system/internal/api/catalog/models"
	basesvc "github.com/Lmineck/ordering-system/internal/api/base/service"
	"github.com/Lmineck/ordering-system/internal/common"
	"github.com/Lmineck/ordering-system/internal/global"
	"github.com/Lmineck/ordering-system/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ItemService là cấu trúc chứa các phương thức liên quan đến nguyên liệu
type ItemService struct {
	*basesvc.BaseServiceMongoImpl[models.Item]
	categoryService *basesvc.BaseServiceMongoImpl[models.Category]
	images          *storage.ImageStore
}

// NewItemService tạo mới ItemService
func NewItemService() (*ItemService, error) {
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Items)
	if !exist {
		return nil, fmt.Errorf("failed to get items collection: %v", common.ErrNotFound)
	}
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &ItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Item](itemCollection),
		categoryService:      basesvc.NewBaseServiceMongo[models.Category](categoryCollection),
		images:               storage.NewImageStore(global.MongoDB_ServerConfig.UploadDir),
	}, nil
}

// ListByCategory trả về các nguyên liệu của một danh mục theo thứ tự index tăng dần.
func (s *ItemService) ListByCategory(ctx context.Context, categoryName string) ([]models.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "index", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"category": categoryName}, opts)
}

// Create tạo nguyên liệu mới trong danh mục, index được gán max(index)+1.
// Danh mục phải tồn tại trước.
func (s *ItemService) Create(ctx context.Context, input *catalogdto.ItemCreateInput) (*models.Item, error) {
	if _, err := s.categoryService.FindOne(ctx, bson.M{"name": input.Category}, nil); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeBusiness, "Danh mục không tồn tại: "+input.Category, common.StatusBadRequest, nil)
		}
		return nil, err
	}

	nextIndex, err := s.nextIndex(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	item := models.Item{
		Index:    nextIndex,
		Name:     input.Name,
		ImgURL:   input.ImgURL,
		Category: input.Category,
		Unit:     input.Unit,
		Amount:   input.Amount,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// nextIndex trả về index kế tiếp trong danh mục: max(index) hiện tại + 1.
func (s *ItemService) nextIndex(ctx context.Context, categoryName string) (int, error) {
	opts := options.Find().SetSort(bson.D{{Key: "index", Value: -1}}).SetLimit(1)
	items, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"category": categoryName}, opts)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 1, nil
	}
	return items[0].Index + 1, nil
}

// Update cập nhật nguyên liệu, chỉ các field khác rỗng được ghi đè.
// Khi đổi ảnh (imgUrl mới khác rỗng và khác ảnh cũ), file ảnh cũ bị xóa.
func (s *ItemService) Update(ctx context.Context, itemID primitive.ObjectID, input *catalogdto.ItemUpdateInput) (*models.Item, error) {
	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, itemID)
	if err != nil {
		return nil, err
	}

	setMap := make(map[string]interface{})
	if input.Name != "" {
		setMap["name"] = input.Name
	}
	if input.Unit != "" {
		setMap["unit"] = input.Unit
	}
	if input.Amount != "" {
		setMap["amount"] = input.Amount
	}
	if input.ImgURL != "" && input.ImgURL != existing.ImgURL {
		if err := s.images.DeleteByURL(existing.ImgURL); err != nil {
			logrus.WithFields(logrus.Fields{"item_id": itemID.Hex(), "error": err.Error()}).Warn("Update: Không xóa được ảnh cũ của nguyên liệu")
		}
		setMap["imgUrl"] = input.ImgURL
	}
	if len(setMap) == 0 {
		return &existing, nil
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, itemID, &basesvc.UpdateData{Set: setMap})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa nguyên liệu kèm file ảnh của nó (nếu có).
func (s *ItemService) Delete(ctx context.Context, itemID primitive.ObjectID) error {
	item, err := s.BaseServiceMongoImpl.FindOneById(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.images.DeleteByURL(item.ImgURL); err != nil {
		logrus.WithFields(logrus.Fields{"item_id": itemID.Hex(), "img_url": item.ImgURL, "error": err.Error()}).Warn("Delete: Không xóa được file ảnh, vẫn xóa nguyên liệu")
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, itemID)
}

// MoveUp đổi chỗ nguyên liệu với nguyên liệu đứng ngay trước nó trong danh mục.
// Nguyên liệu đầu danh sách là no-op.
func (s *ItemService) MoveUp(ctx context.Context, itemID primitive.ObjectID, categoryName string) ([]models.Item, error) {
	return s.swapAdjacent(ctx, itemID, categoryName, -1)
}

// MoveDown đổi chỗ nguyên liệu với nguyên liệu đứng ngay sau nó trong danh mục.
// Nguyên liệu cuối danh sách là no-op.
func (s *ItemService) MoveDown(ctx context.Context, itemID primitive.ObjectID, categoryName string) ([]models.Item, error) {
	return s.swapAdjacent(ctx, itemID, categoryName, 1)
}

// indexSwap mô tả một lần đổi giá trị index giữa hai nguyên liệu liền kề.
type indexSwap struct {
	FirstID     primitive.ObjectID
	FirstIndex  int
	SecondID    primitive.ObjectID
	SecondIndex int
}

// planAdjacentSwap tìm nguyên liệu trong danh sách đã sắp theo index tăng dần
// và lập kế hoạch đổi index với nguyên liệu tại vị trí kề (direction -1: lên,
// +1: xuống). Trả về nil khi vị trí kề vượt biên danh sách, lỗi khi nguyên
// liệu không thuộc danh sách.
func planAdjacentSwap(items []models.Item, itemID primitive.ObjectID, direction int) (*indexSwap, error) {
	p := -1
	for i, item := range items {
		if item.ID == itemID {
			p = i
			break
		}
	}
	if p == -1 {
		return nil, common.NewError(common.ErrCodeBusiness, "Nguyên liệu không thuộc danh mục này", common.StatusBadRequest, nil)
	}

	q := p + direction
	if q < 0 || q > len(items)-1 {
		return nil, nil
	}

	return &indexSwap{
		FirstID:     items[p].ID,
		FirstIndex:  items[q].Index,
		SecondID:    items[q].ID,
		SecondIndex: items[p].Index,
	}, nil
}

// swapAdjacent đổi giá trị index của nguyên liệu với nguyên liệu tại vị trí
// kề trong danh mục. Vượt biên danh sách là no-op.
func (s *ItemService) swapAdjacent(ctx context.Context, itemID primitive.ObjectID, categoryName string, direction int) ([]models.Item, error) {
	items, err := s.ListByCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	swap, err := planAdjacentSwap(items, itemID, direction)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		// Đã ở biên, giữ nguyên thứ tự
		return items, nil
	}

	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, swap.FirstID, &basesvc.UpdateData{Set: map[string]interface{}{"index": swap.FirstIndex}}); err != nil {
		return nil, err
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, swap.SecondID, &basesvc.UpdateData{Set: map[string]interface{}{"index": swap.SecondIndex}}); err != nil {
		return nil, err
	}

	return s.ListByCategory(ctx, categoryName)
}
