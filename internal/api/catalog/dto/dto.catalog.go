package catalogdto

// CategoryCreateInput đầu vào tạo danh mục nguyên liệu.
type CategoryCreateInput struct {
	Name string `json:"name" validate:"required,no_xss"`
}

// CategoryUpdateInput đầu vào đổi tên danh mục.
type CategoryUpdateInput struct {
	Name string `json:"name" validate:"omitempty,no_xss"`
}

// ItemCreateInput đầu vào tạo nguyên liệu. Index được service tự gán,
// ImgURL có thể rỗng (chưa upload ảnh).
type ItemCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Category string `json:"category" validate:"required,no_xss"`
	Unit     string `json:"unit" validate:"required,no_xss"`
	Amount   string `json:"amount" validate:"omitempty,no_xss"`
	ImgURL   string `json:"imgUrl"`
}

// ItemUpdateInput đầu vào cập nhật nguyên liệu. Chỉ field khác rỗng được cập nhật.
type ItemUpdateInput struct {
	Name   string `json:"name" validate:"omitempty,no_xss"`
	Unit   string `json:"unit" validate:"omitempty,no_xss"`
	Amount string `json:"amount" validate:"omitempty,no_xss"`
	ImgURL string `json:"imgUrl"`
}
