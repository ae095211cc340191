// Package router đăng ký các route thuộc domain orders.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/Lmineck/ordering-system/internal/api/auth/models"
	ordershdl "github.com/Lmineck/ordering-system/internal/api/orders/handler"
	"github.com/Lmineck/ordering-system/internal/api/middleware"
	apirouter "github.com/Lmineck/ordering-system/internal/api/router"
)

// Register đăng ký tất cả route orders lên v1.
// Gửi/sửa đơn: tài khoản chi nhánh (user) hoặc admin - guest chưa duyệt bị chặn.
// Xem toàn hệ thống (by-date, dates, aggregate) và chuyển trạng thái: chỉ admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := ordershdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	branchMiddlewares := []fiber.Handler{authMiddleware, middleware.RequireRole(authmodels.RoleUser, authmodels.RoleAdmin)}
	adminMiddlewares := []fiber.Handler{authMiddleware, middleware.RequireRole(authmodels.RoleAdmin)}

	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/insert-one", branchMiddlewares, orderHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/by-branch", branchMiddlewares, orderHandler.HandleByBranch)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/update-by-id/:id", branchMiddlewares, orderHandler.UpdateById)

	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/by-date", adminMiddlewares, orderHandler.HandleByDate)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/dates", adminMiddlewares, orderHandler.HandleDates)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/aggregate", adminMiddlewares, orderHandler.HandleAggregate)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/status/:id", adminMiddlewares, orderHandler.HandleUpdateStatus)

	return nil
}
