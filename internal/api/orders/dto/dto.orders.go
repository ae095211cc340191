package ordersdto

// OrderItemInput một dòng nguyên liệu trong đơn gửi lên.
type OrderItemInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Category string `json:"category" validate:"required,no_xss"`
	Unit     string `json:"unit" validate:"required,no_xss"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// OrderCreateInput đầu vào gửi đơn hàng. Chi nhánh lấy từ tài khoản đăng nhập,
// không nhận từ client.
type OrderCreateInput struct {
	Items       []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	RequestNote string           `json:"requestNote" validate:"omitempty,no_xss"`
}

// OrderUpdateInput đầu vào sửa đơn hàng: thay toàn bộ danh sách dòng
// (dòng bị xóa thì không gửi lên) và ghi đè requestNote.
type OrderUpdateInput struct {
	Items       []OrderItemInput `json:"items" validate:"dive"`
	RequestNote string           `json:"requestNote" validate:"omitempty,no_xss"`
}

// OrderStatusInput đầu vào chuyển trạng thái đơn hàng.
type OrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
