// Package models - model đơn đặt hàng (Order) thuộc domain orders.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của đơn hàng.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatus kiểm tra giá trị trạng thái đơn hàng hợp lệ.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// OrderItem là một dòng nguyên liệu trong đơn hàng.
// Bộ ba (Name, Category, Unit) là khóa gộp khi hai đơn cùng chi nhánh
// cùng ngày được nhập chung.
type OrderItem struct {
	Name     string `json:"name" bson:"name"`
	Category string `json:"category" bson:"category"`
	Unit     string `json:"unit" bson:"unit"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Order định nghĩa đơn đặt hàng của một chi nhánh trong một ngày.
// OrderDate có dạng yyyyMMddHHmmss; sau khi gộp, mỗi chi nhánh chỉ còn
// tối đa một đơn cho mỗi ngày.
type Order struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Items       []OrderItem        `json:"items" bson:"items"`
	Branch      string             `json:"branch" bson:"branch"`
	OrderDate   string             `json:"orderDate" bson:"orderDate"`
	Status      string             `json:"status" bson:"status" default:"pending"`
	RequestNote string             `json:"requestNote" bson:"requestNote"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
