package utility

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"

	"github.com/Lmineck/ordering-system/internal/common"
)

// JwtClaims chứa data được mã hóa trong JWT token.
type JwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token mới với secret key cho trước.
//
// Parameters:
//   - secret: Secret key dùng để ký token
//   - userID: ID người dùng (hex string)
//   - time: Thời điểm tạo token (hex string)
//   - randomNumber: Số ngẫu nhiên chống trùng token
//
// Returns:
//   - map chứa token đã ký với key "token"
//   - error nếu ký thất bại
func CreateToken(secret string, userID string, time string, randomNumber string) (map[string]string, error) {
	claims := &JwtClaims{
		UserID:       userID,
		Time:         time,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã và xác thực JWT token.
// Trả về claims nếu token hợp lệ, lỗi nếu token sai chữ ký hoặc sai định dạng.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
