package ordershdl

import (
	"testing"
	"time"

	authmodels "github.com/Lmineck/ordering-system/internal/api/auth/models"
	models "github.com/Lmineck/ordering-system/internal/api/orders/models"
	"github.com/Lmineck/ordering-system/internal/utility"
)

func orderAt(branch string, sentAt time.Time) models.Order {
	return models.Order{Branch: branch, OrderDate: utility.FormatCompactTime(sentAt)}
}

func TestVerifyOrderEditable_ChiNhanhTrongNgay(t *testing.T) {
	now := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	order := orderAt("오일내본점", now.Add(-2*time.Hour))

	if err := verifyOrderEditable(authmodels.RoleUser, "오일내본점", order, now); err != nil {
		t.Errorf("Chi nhánh phải sửa được đơn của mình trong ngày, nhận được lỗi: %v", err)
	}
}

func TestVerifyOrderEditable_ChanKhacChiNhanh(t *testing.T) {
	now := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	order := orderAt("오일내강남점", now)

	if err := verifyOrderEditable(authmodels.RoleUser, "오일내본점", order, now); err == nil {
		t.Error("Tài khoản thường phải bị chặn khi sửa đơn của chi nhánh khác")
	}
}

func TestVerifyOrderEditable_ChanDonNgayTruoc(t *testing.T) {
	now := time.Date(2025, 3, 7, 0, 30, 0, 0, time.UTC)
	order := orderAt("오일내본점", now.Add(-24*time.Hour))

	if err := verifyOrderEditable(authmodels.RoleUser, "오일내본점", order, now); err == nil {
		t.Error("Tài khoản thường phải bị chặn khi sửa đơn của ngày trước")
	}
}

func TestVerifyOrderEditable_AdminKhongBiGioiHan(t *testing.T) {
	now := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	order := orderAt("오일내강남점", now.Add(-72*time.Hour))

	if err := verifyOrderEditable(authmodels.RoleAdmin, "오일내본점", order, now); err != nil {
		t.Errorf("Admin phải sửa được đơn của mọi chi nhánh và mọi ngày, nhận được lỗi: %v", err)
	}
}
