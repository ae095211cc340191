package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Các pattern dùng cho custom validator của domain đặt hàng
var (
	// loginIDRegex: ID đăng nhập gồm chữ thường và số, dài 6-12 ký tự
	loginIDRegex = regexp.MustCompile(`^[a-z0-9]{6,12}$`)

	// phoneRegex: số điện thoại di động Hàn Quốc dạng 010-1234-5678
	phoneRegex = regexp.MustCompile(`^010-\d{4}-\d{4}$`)

	// branchRegex: tên chi nhánh phải bắt đầu bằng "오일내" và kết thúc bằng "점"
	branchRegex = regexp.MustCompile(`^오일내.+점$`)

	// passwordCharsRegex: mật khẩu chỉ gồm chữ, số và các ký tự đặc biệt cho phép
	passwordCharsRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("login_id", validateLoginID)
	_ = Validate.RegisterValidation("order_password", validateOrderPassword)
	_ = Validate.RegisterValidation("phone_kr", validatePhoneKR)
	_ = Validate.RegisterValidation("branch_name", validateBranchName)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateLoginID kiểm tra ID đăng nhập: chữ thường + số, 6-12 ký tự
func validateLoginID(fl validator.FieldLevel) bool {
	return IsValidLoginID(fl.Field().String())
}

// validateOrderPassword kiểm tra mật khẩu: tối thiểu 8 ký tự, có chữ, số và ký tự đặc biệt
func validateOrderPassword(fl validator.FieldLevel) bool {
	return IsValidPassword(fl.Field().String())
}

// validatePhoneKR kiểm tra số điện thoại dạng 010-xxxx-xxxx
func validatePhoneKR(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

// validateBranchName kiểm tra tên chi nhánh theo quy ước "오일내...점"
func validateBranchName(fl validator.FieldLevel) bool {
	return IsValidBranch(fl.Field().String())
}

// IsValidLoginID kiểm tra định dạng ID đăng nhập
func IsValidLoginID(value string) bool {
	return loginIDRegex.MatchString(value)
}

// IsValidPassword kiểm tra độ mạnh mật khẩu.
// Regexp của Go không hỗ trợ lookahead nên kiểm tra từng điều kiện:
// chỉ gồm ký tự cho phép, tối thiểu 8 ký tự, có ít nhất một chữ cái,
// một chữ số và một ký tự đặc biệt (@$!%*?&).
func IsValidPassword(value string) bool {
	if !passwordCharsRegex.MatchString(value) {
		return false
	}

	var (
		hasLetter  bool
		hasDigit   bool
		hasSpecial bool
	)
	for _, ch := range value {
		switch {
		case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
			hasLetter = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		case strings.ContainsRune("@$!%*?&", ch):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

// IsValidPhone kiểm tra định dạng số điện thoại
func IsValidPhone(value string) bool {
	return phoneRegex.MatchString(value)
}

// IsValidBranch kiểm tra định dạng tên chi nhánh
func IsValidBranch(value string) bool {
	return branchRegex.MatchString(value)
}
