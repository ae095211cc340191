// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role của hệ thống đặt hàng.
// Tài khoản mới đăng ký luôn bắt đầu với RoleGuest, quản trị viên duyệt lên RoleUser.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

// User định nghĩa mô hình người dùng của một chi nhánh.
// UserID là ID đăng nhập (không phải ObjectID), Password luôn là bcrypt hash.
// Token chứa token xác thực mới nhất, bị xóa khi logout.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"userId,omitempty" bson:"userId,omitempty" index:"unique,sparse"`
	Password  string             `json:"-" bson:"password,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Branch    string             `json:"branch" bson:"branch" index:"unique"`
	Role      string             `json:"role" bson:"role" default:"guest"`
	Token     string             `json:"-" bson:"token"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Sanitize xóa các field nhạy cảm trước khi trả về client.
func (u *User) Sanitize() {
	u.Password = ""
	u.Token = ""
}
