// Package ordersvc - service đơn đặt hàng.
// File này chứa các hàm thuần (không chạm database) cho việc gộp đơn
// và tổng hợp nguyên liệu theo ngày.
package ordersvc

import (
	"sort"

	models "github.com/Lmineck/ordering-system/internal/api/orders/models"
)

// MergeOrderItems gộp danh sách dòng mới vào danh sách hiện có.
// Dòng trùng khóa (name, category, unit) được cộng dồn quantity,
// dòng không trùng được nối vào cuối theo thứ tự gửi lên.
func MergeOrderItems(existing, incoming []models.OrderItem) []models.OrderItem {
	merged := make([]models.OrderItem, len(existing))
	copy(merged, existing)

	for _, in := range incoming {
		matched := false
		for i := range merged {
			if merged[i].Name == in.Name && merged[i].Category == in.Category && merged[i].Unit == in.Unit {
				merged[i].Quantity += in.Quantity
				matched = true
				break
			}
		}
		if !matched {
			merged = append(merged, in)
		}
	}
	return merged
}

// MergeRequestNote nối ghi chú mới vào ghi chú hiện có bằng xuống dòng.
// Ghi chú rỗng (cũ hoặc mới) bị bỏ qua, không sinh dòng trống.
func MergeRequestNote(existing, incoming string) string {
	if incoming == "" {
		return existing
	}
	if existing == "" {
		return incoming
	}
	return existing + "\n" + incoming
}

// AggregatedItem là tổng số lượng của một nguyên liệu trong một ngày,
// cộng trên mọi chi nhánh.
type AggregatedItem struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Quantity int    `json:"quantity"`
}

// AggregateItems tổng hợp nguyên liệu của các đơn theo TÊN nguyên liệu.
// Unit lấy theo dòng gặp đầu tiên; các dòng cùng tên nhưng khác unit
// vẫn cộng chung số lượng. Kết quả sắp theo tên để ổn định.
func AggregateItems(orders []models.Order) []AggregatedItem {
	totals := make(map[string]*AggregatedItem)
	names := make([]string, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			if agg, ok := totals[item.Name]; ok {
				agg.Quantity += item.Quantity
				continue
			}
			totals[item.Name] = &AggregatedItem{
				Name:     item.Name,
				Unit:     item.Unit,
				Quantity: item.Quantity,
			}
			names = append(names, item.Name)
		}
	}

	sort.Strings(names)
	result := make([]AggregatedItem, 0, len(names))
	for _, name := range names {
		result = append(result, *totals[name])
	}
	return result
}
