// Package authsvc - khởi tạo tài khoản quản trị mặc định.
package authsvc

import (
	"context"
	"errors"

	models "github.com/Lmineck/ordering-system/internal/api/auth/models"
	basesvc "github.com/Lmineck/ordering-system/internal/api/base/service"
	"github.com/Lmineck/ordering-system/internal/common"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminAccount tạo tài khoản admin mặc định nếu hệ thống chưa có admin nào.
// Dùng khi khởi động server với ADMIN_USER_ID/ADMIN_PASSWORD trong config.
// Đã có admin thì không làm gì.
func (s *UserService) EnsureAdminAccount(ctx context.Context, userID, password, branch string) error {
	count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Tài khoản cùng userId đã tồn tại (nhưng chưa phải admin) thì nâng quyền
	if existing, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": userID}, nil); err == nil {
		promote := &basesvc.UpdateData{Set: map[string]interface{}{"role": models.RoleAdmin}}
		if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, existing.ID, promote); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"user_id": existing.ID.Hex()}).Info("EnsureAdminAccount: Nâng tài khoản có sẵn lên admin")
		return nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		UserID:   userID,
		Password: string(hash),
		Name:     "관리자",
		Branch:   branch,
		Role:     models.RoleAdmin,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, admin)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex()}).Info("EnsureAdminAccount: Tạo tài khoản admin mặc định")
	return nil
}
