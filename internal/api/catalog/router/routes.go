// Package router đăng ký các route thuộc domain catalog: Categories, Items, Images.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/Lmineck/ordering-system/internal/api/auth/models"
	cataloghdl "github.com/Lmineck/ordering-system/internal/api/catalog/handler"
	"github.com/Lmineck/ordering-system/internal/api/middleware"
	apirouter "github.com/Lmineck/ordering-system/internal/api/router"
)

// Register đăng ký tất cả route catalog (categories, items, images) lên v1.
// Đọc: mọi tài khoản đã đăng nhập; ghi: chỉ admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	adminOnly := []string{authmodels.RoleAdmin}

	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	categoryConfig := apirouter.CRUDConfig{
		Find: true, FindById: true,
		InsOne: true, DelById: true,
		Count: true,
	}
	r.RegisterCRUDRoutes(v1, "/categories", categoryHandler, categoryConfig, nil, adminOnly)

	itemHandler, err := cataloghdl.NewItemHandler()
	if err != nil {
		return fmt.Errorf("failed to create item handler: %w", err)
	}
	itemConfig := apirouter.CRUDConfig{
		Find: true, FindById: true,
		InsOne: true, DelById: true,
		Count: true,
	}
	r.RegisterCRUDRoutes(v1, "/items", itemHandler, itemConfig, nil, adminOnly)

	// Cập nhật nguyên liệu dùng PATCH (không nằm trong bộ route CRUD chuẩn)
	authMiddleware := middleware.AuthMiddleware()
	adminMiddlewares := []fiber.Handler{authMiddleware, middleware.RequireRole(authmodels.RoleAdmin)}
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "PATCH", "/update-by-id/:id", adminMiddlewares, itemHandler.UpdateById)

	// Đổi thứ tự hiển thị trong danh mục
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "GET", "/move-up", adminMiddlewares, itemHandler.HandleMoveUp)
	apirouter.RegisterRouteWithMiddleware(v1, "/items", "GET", "/move-down", adminMiddlewares, itemHandler.HandleMoveDown)

	imageHandler, err := cataloghdl.NewImageHandler()
	if err != nil {
		return fmt.Errorf("failed to create image handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/images", "POST", "/upload", adminMiddlewares, imageHandler.HandleUpload)
	apirouter.RegisterRouteWithMiddleware(v1, "/images", "GET", "", []fiber.Handler{authMiddleware}, imageHandler.HandleServe)

	return nil
}
