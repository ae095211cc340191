// Package router đăng ký các route thuộc domain auth: System, Auth, Users.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/Lmineck/ordering-system/internal/api/auth/handler"
	basehdl "github.com/Lmineck/ordering-system/internal/api/base/handler"
	models "github.com/Lmineck/ordering-system/internal/api/auth/models"
	"github.com/Lmineck/ordering-system/internal/api/middleware"
	apirouter "github.com/Lmineck/ordering-system/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, users) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Route public: đăng ký và đăng nhập không yêu cầu token
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Quản lý tài khoản chi nhánh: chỉ admin được đọc và ghi
	adminOnly := []string{models.RoleAdmin}
	userConfig := apirouter.CRUDConfig{
		Find: true, FindById: true, Paginate: true,
		UpdById: true, DelById: true,
		Count: true,
	}
	r.RegisterCRUDRoutes(router, "/users", userHandler, userConfig, adminOnly, adminOnly)

	approveMiddlewares := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin)}
	apirouter.RegisterRouteWithMiddleware(router, "/users", "POST", "/approve/:id", approveMiddlewares, userHandler.HandleApproveUser)
	return nil
}
