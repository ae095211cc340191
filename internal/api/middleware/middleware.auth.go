package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "github.com/Lmineck/ordering-system/internal/api/auth/models"
	authsvc "github.com/Lmineck/ordering-system/internal/api/auth/service"
	"github.com/Lmineck/ordering-system/internal/common"
	"github.com/Lmineck/ordering-system/internal/global"
	"github.com/Lmineck/ordering-system/internal/logger"
	"github.com/Lmineck/ordering-system/internal/utility"
)

// AuthManager quản lý xác thực người dùng theo từng request.
// Trạng thái đăng nhập không giữ trong biến toàn cục mà được nạp lại từ
// token của mỗi request và lưu vào Locals của request đó.
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	newManager.UserCRUD = userService

	// Cache user theo token với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// resolveUser xác thực token và trả về user tương ứng.
// Token phải có chữ ký hợp lệ VÀ trùng với token đang lưu trên user
// (token cũ bị vô hiệu ngay khi login lại hoặc logout).
func (am *AuthManager) resolveUser(ctx context.Context, token string) (*models.User, error) {
	cacheKey := "auth_user:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		user := cached.(models.User)
		return &user, nil
	}

	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
	if err != nil {
		return nil, err
	}

	user, err := am.UserCRUD.FindOneById(ctx, utility.String2ObjectID(claims.UserID))
	if err != nil {
		return nil, common.ErrTokenInvalid
	}
	if user.Token != token {
		return nil, common.ErrTokenInvalid
	}

	am.Cache.Set(cacheKey, user)
	return &user, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Lấy Bearer token từ header, xác thực và lưu thông tin user vào Locals:
// user_id, user_role, user_branch, user.
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		user, err := authManager.resolveUser(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token rejected")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin user vào context của request
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user_role", user.Role)
		c.Locals("user_branch", user.Branch)
		c.Locals("user", *user)

		return c.Next()
	}
}

// RequireRole middleware kiểm tra role của user hiện tại.
// Phải đặt SAU AuthMiddleware trong chain. User không có role phù hợp nhận 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userRole, _ := c.Locals("user_role").(string)
		if userRole == "" {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuth,
				"User not authenticated",
				common.StatusUnauthorized,
				nil,
			))
			return nil
		}

		for _, role := range roles {
			if userRole == role {
				return c.Next()
			}
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id":   c.Locals("user_id"),
			"user_role": userRole,
			"path":      c.Path(),
		}).Warn("❌ [AUTH] User does not have required role")
		HandleErrorResponse(c, common.NewError(
			common.ErrCodeAuthRole,
			"Không có quyền truy cập. Vui lòng liên hệ quản trị viên.",
			common.StatusForbidden,
			nil,
		))
		return nil
	}
}
