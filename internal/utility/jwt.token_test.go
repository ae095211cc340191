package utility

import "testing"

func TestCreateAndParseToken(t *testing.T) {
	result, err := CreateToken("test-secret", "64f1a2b3c4d5e6f708090a0b", "18f3a2b1", "42")
	if err != nil {
		t.Fatalf("CreateToken phải thành công: %v", err)
	}
	signed := result["token"]
	if signed == "" {
		t.Fatal("Token đã ký không được rỗng")
	}

	claims, err := ParseToken("test-secret", signed)
	if err != nil {
		t.Fatalf("ParseToken phải thành công với đúng secret: %v", err)
	}
	if claims.UserID != "64f1a2b3c4d5e6f708090a0b" {
		t.Errorf("Mong đợi userId 64f1a2b3c4d5e6f708090a0b, nhận được %s", claims.UserID)
	}
	if claims.RandomNumber != "42" {
		t.Errorf("Mong đợi randomNumber 42, nhận được %s", claims.RandomNumber)
	}
}

func TestParseToken_SaiSecret(t *testing.T) {
	result, err := CreateToken("secret-a", "64f1a2b3c4d5e6f708090a0b", "18f3a2b1", "7")
	if err != nil {
		t.Fatalf("CreateToken phải thành công: %v", err)
	}

	if _, err := ParseToken("secret-b", result["token"]); err == nil {
		t.Error("ParseToken phải thất bại khi secret không khớp")
	}
}

func TestParseToken_ChuoiKhongHopLe(t *testing.T) {
	if _, err := ParseToken("test-secret", "not-a-jwt"); err == nil {
		t.Error("ParseToken phải thất bại với chuỗi không phải JWT")
	}
}
