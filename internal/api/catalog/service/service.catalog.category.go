// Package catalogsvc - service danh mục và nguyên liệu.
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
)

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục nguyên liệu
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
	itemService *basesvc.BaseServiceMongoImpl[models.Item]
	images      *storage.ImageStore
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Items)
	if !exist {
		return nil, fmt.Errorf("failed to get items collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](categoryCollection),
		itemService:          basesvc.NewBaseServiceMongo[models.Item](itemCollection),
		images:               storage.NewImageStore(global.MongoDB_ServerConfig.UploadDir),
	}, nil
}

// Create tạo danh mục mới, từ chối khi tên đã tồn tại.
func (s *CategoryService) Create(ctx context.Context, input *catalogdto.CategoryCreateInput) (*models.Category, error) {
	if _, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": input.Name}, nil); err == nil {
		return nil, common.NewError(common.ErrCodeBusiness, "Danh mục đã tồn tại: "+input.Name, common.StatusConflict, nil)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, models.Category{Name: input.Name})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete xóa danh mục kèm cascade: xóa toàn bộ nguyên liệu thuộc danh mục,
// file ảnh của từng nguyên liệu và thư mục ảnh của danh mục, rồi mới xóa danh mục.
func (s *CategoryService) Delete(ctx context.Context, categoryID primitive.ObjectID) error {
	category, err := s.BaseServiceMongoImpl.FindOneById(ctx, categoryID)
	if err != nil {
		return err
	}

	itemFilter := bson.M{"category": category.Name}
	items, err := s.itemService.Find(ctx, itemFilter, nil)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.images.DeleteByURL(item.ImgURL); err != nil {
			logrus.WithFields(logrus.Fields{"item_id": item.ID.Hex(), "img_url": item.ImgURL, "error": err.Error()}).Warn("Delete: Không xóa được file ảnh của nguyên liệu, tiếp tục cascade")
		}
	}

	if len(items) > 0 {
		if _, err := s.itemService.DeleteMany(ctx, itemFilter); err != nil {
			return err
		}
	}

	if err := s.images.DeleteCategoryDir(category.Name); err != nil {
		logrus.WithFields(logrus.Fields{"category": category.Name, "error": err.Error()}).Warn("Delete: Không xóa được thư mục ảnh của danh mục, tiếp tục xóa danh mục")
	}

	if err := s.BaseServiceMongoImpl.DeleteById(ctx, categoryID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"category": category.Name, "deleted_items": len(items)}).Info("Delete: Xóa danh mục và nguyên liệu liên quan thành công")
	return nil
}
