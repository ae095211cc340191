package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserSerialize_KhongLoFieldNhayCam(t *testing.T) {
	user := User{
		UserID:   "branch01",
		Password: "$2a$10$hashhashhashhashhashha",
		Name:     "김지수",
		Branch:   "오일내본점",
		Role:     RoleUser,
		Token:    "eyJhbGciOiJIUzI1NiJ9.secret-session-token",
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal user phải thành công: %v", err)
	}

	serialized := string(data)
	if strings.Contains(serialized, user.Token) {
		t.Error("Token phiên không được xuất hiện trong JSON của user")
	}
	if strings.Contains(serialized, user.Password) {
		t.Error("Password hash không được xuất hiện trong JSON của user")
	}
	if !strings.Contains(serialized, `"userId":"branch01"`) {
		t.Errorf("UserID phải được serialize bình thường, nhận được %s", serialized)
	}
}

func TestUserSanitize(t *testing.T) {
	user := User{Password: "hash", Token: "token"}
	user.Sanitize()
	if user.Password != "" || user.Token != "" {
		t.Error("Sanitize phải xóa cả password và token")
	}
}
