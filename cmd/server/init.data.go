package main

import (
	"context"

	authsvc "github.com/Lmineck/ordering-system/internal/api/auth/service"
	"github.com/Lmineck/ordering-system/internal/global"
	"github.com/Lmineck/ordering-system/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định: tài khoản admin đầu tiên.
// Chỉ tạo khi hệ thống chưa có admin nào và ADMIN_USER_ID/ADMIN_PASSWORD
// được cấu hình trong env.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	cfg := global.MongoDB_ServerConfig
	if cfg.AdminUserID == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_USER_ID/ADMIN_PASSWORD not set, skipping default admin account")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	if err := userService.EnsureAdminAccount(context.TODO(), cfg.AdminUserID, cfg.AdminPassword, cfg.AdminBranch); err != nil {
		log.Warnf("Failed to ensure default admin account: %v", err)
		return
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
