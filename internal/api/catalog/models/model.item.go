// Package models - model nguyên liệu (Item) thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item định nghĩa mô hình nguyên liệu trong một danh mục.
// Category lưu tên danh mục (denormalized) để truy vấn và gộp đơn hàng theo tên.
// Index là thứ tự hiển thị trong danh mục, bắt đầu từ 1.
type Item struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Index     int                `json:"index" bson:"index"`
	Name      string             `json:"name" bson:"name"`
	ImgURL    string             `json:"imgUrl" bson:"imgUrl"`
	Category  string             `json:"category" bson:"category"`
	Unit      string             `json:"unit" bson:"unit"`
	Amount    string             `json:"amount" bson:"amount"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
