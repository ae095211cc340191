// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "github.com/Lmineck/ordering-system/internal/api/auth/dto"
	models "github.com/Lmineck/ordering-system/internal/api/auth/models"
	basesvc "github.com/Lmineck/ordering-system/internal/api/base/service"
	"github.com/Lmineck/ordering-system/internal/common"
	"github.com/Lmineck/ordering-system/internal/global"
	"github.com/Lmineck/ordering-system/internal/utility"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản chi nhánh mới.
// Tài khoản mới luôn có role guest, đợi quản trị viên duyệt lên user.
// Trả về lỗi nếu userId hoặc chi nhánh đã được đăng ký.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra trùng userId
	if _, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": input.UserID}, nil); err == nil {
		return nil, common.NewError(common.ErrCodeBusiness, "ID đăng nhập đã được sử dụng", common.StatusConflict, nil)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	// Kiểm tra trùng chi nhánh - mỗi chi nhánh chỉ có một tài khoản
	if _, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"branch": input.Branch}, nil); err == nil {
		return nil, common.NewError(common.ErrCodeBusiness, "Chi nhánh đã có tài khoản đăng ký", common.StatusConflict, nil)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		UserID:   input.UserID,
		Password: string(hash),
		Name:     input.Name,
		Phone:    input.Phone,
		Branch:   input.Branch,
		Role:     models.RoleGuest,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "branch": created.Branch}).Info("Register: Đăng ký tài khoản mới thành công")
	return &created, nil
}

// Login xác thực userId + mật khẩu, cấp JWT token mới và lưu vào user.
// Sai thông tin đăng nhập trả về cùng một lỗi 401 (không lộ tài khoản tồn tại hay không).
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": input.UserID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	// So sánh bcrypt (constant time)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token": tokenMap["token"],
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "branch": updatedUser.Branch}).Info("Login: Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token đã lưu)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token": "",
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// Approve duyệt tài khoản guest lên user. Chỉ tài khoản đang ở role guest mới duyệt được.
func (s *UserService) Approve(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleGuest {
		return nil, common.NewError(common.ErrCodeBusinessState, "Tài khoản không ở trạng thái chờ duyệt", common.StatusBadRequest, nil)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"role": models.RoleUser,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "branch": updatedUser.Branch}).Info("Approve: Duyệt tài khoản thành công")
	return &updatedUser, nil
}

// UpdateProfile cập nhật thông tin cá nhân (name/phone/password).
// Chỉ cập nhật các field khác rỗng; password được hash lại bằng bcrypt.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (*models.User, error) {
	setMap := make(map[string]interface{})
	if input.Name != "" {
		setMap["name"] = input.Name
	}
	if input.Phone != "" {
		setMap["phone"] = input.Phone
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
		}
		setMap["password"] = string(hash)
	}
	if len(setMap) == 0 {
		user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	updateData := &basesvc.UpdateData{Set: setMap}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}
