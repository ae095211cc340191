package global

import "testing"

func TestIsValidLoginID(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"user1", false},         // 5 ký tự, quá ngắn
		{"user01", true},         // đúng 6 ký tự
		{"branch000001", true},   // đúng 12 ký tự
		{"branch0000012", false}, // 13 ký tự, quá dài
		{"User01", false},        // có chữ hoa
		{"user 1", false},        // có khoảng trắng
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidLoginID(tc.value); got != tc.want {
			t.Errorf("IsValidLoginID(%q) = %v, mong đợi %v", tc.value, got, tc.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"abc123!@", true},   // đủ chữ, số, ký tự đặc biệt
		{"abcdefgh", false},  // thiếu số và ký tự đặc biệt
		{"12345678", false},  // thiếu chữ và ký tự đặc biệt
		{"abcd1234", false},  // thiếu ký tự đặc biệt
		{"ab1!", false},      // dưới 8 ký tự
		{"abc 123!", false},  // khoảng trắng không được phép
		{"abc123!#", false},  // # không nằm trong danh sách cho phép
		{"Abcd123$efg", true},
	}
	for _, tc := range cases {
		if got := IsValidPassword(tc.value); got != tc.want {
			t.Errorf("IsValidPassword(%q) = %v, mong đợi %v", tc.value, got, tc.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"010-1234-5678", true},
		{"010-123-4567", false},  // thiếu một chữ số ở cụm giữa
		{"011-1234-5678", false}, // chỉ chấp nhận đầu số 010
		{"01012345678", false},   // thiếu dấu gạch
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidPhone(tc.value); got != tc.want {
			t.Errorf("IsValidPhone(%q) = %v, mong đợi %v", tc.value, got, tc.want)
		}
	}
}

func TestIsValidBranch(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"오일내본점", true},
		{"오일내강남점", true},
		{"오일내점", false}, // thiếu phần tên giữa
		{"본점", false},   // thiếu tiền tố 오일내
		{"오일내본", false}, // thiếu hậu tố 점
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidBranch(tc.value); got != tc.want {
			t.Errorf("IsValidBranch(%q) = %v, mong đợi %v", tc.value, got, tc.want)
		}
	}
}
