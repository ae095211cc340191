package authdto

// UserRegisterInput đầu vào đăng ký tài khoản chi nhánh.
// Các custom validator (login_id, order_password, phone_kr, branch_name)
// được đăng ký trong global.InitValidator.
type UserRegisterInput struct {
	UserID   string `json:"userId" validate:"required,login_id"`
	Password string `json:"password" validate:"required,order_password"`
	Name     string `json:"name" validate:"required,no_xss"`
	Phone    string `json:"phone" validate:"required,phone_kr"`
	Branch   string `json:"branch" validate:"required,branch_name"`
}

// UserLoginInput đầu vào đăng nhập.
type UserLoginInput struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserChangeInfoInput đầu vào tự thay đổi thông tin (profile).
// Chỉ các field khác rỗng mới được cập nhật, password sẽ được hash lại.
type UserChangeInfoInput struct {
	Name     string `json:"name" validate:"omitempty,no_xss"`
	Phone    string `json:"phone" validate:"omitempty,phone_kr"`
	Password string `json:"password" validate:"omitempty,order_password"`
}

// UserCreateInput đầu vào tạo người dùng qua CRUD (chỉ admin).
type UserCreateInput struct {
	UserID   string `json:"userId" validate:"required,login_id"`
	Password string `json:"password" validate:"required,order_password"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,phone_kr"`
	Branch   string `json:"branch" validate:"required,branch_name"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user guest"`
}

// UserUpdateInput đầu vào cập nhật người dùng qua CRUD (chỉ admin).
type UserUpdateInput struct {
	Name   string `json:"name" validate:"omitempty,no_xss"`
	Phone  string `json:"phone" validate:"omitempty,phone_kr"`
	Branch string `json:"branch" validate:"omitempty,branch_name"`
	Role   string `json:"role" validate:"omitempty,oneof=admin user guest"`
}
