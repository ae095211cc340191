package utility

import (
	"time"
)

// Các hằng số layout cho timestamp dạng chuỗi của domain đặt hàng.
// Đơn đặt hàng lưu orderDate dưới dạng chuỗi compact "yyyyMMddHHmmss"
// để có thể so sánh khoảng ngày bằng so sánh chuỗi.
const (
	LayoutCompactSecond = "20060102150405" // yyyyMMddHHmmss
	LayoutImageSuffix   = "20060102_150405"
)

// FormatCompactTime định dạng thời gian thành chuỗi yyyyMMddHHmmss
func FormatCompactTime(t time.Time) string {
	return t.Format(LayoutCompactSecond)
}

// FormatImageTimestamp định dạng thời gian thành hậu tố tên file ảnh yyyyMMdd_HHmmss
func FormatImageTimestamp(t time.Time) string {
	return t.Format(LayoutImageSuffix)
}

// DateKey trích xuất khóa ngày (yyyyMMdd) từ orderDate dạng yyyyMMddHHmmss.
// Trả về chuỗi rỗng nếu orderDate ngắn hơn 8 ký tự.
func DateKey(orderDate string) string {
	if len(orderDate) < 8 {
		return ""
	}
	return orderDate[:8]
}

// DayRange trả về khoảng [start, end] của một ngày theo dateKey (yyyyMMdd).
// start = dateKey + "000000", end = dateKey + "235959".
// Dùng để tìm các đơn cùng ngày bằng so sánh chuỗi trên orderDate.
func DayRange(dateKey string) (start string, end string) {
	return dateKey + "000000", dateKey + "235959"
}
