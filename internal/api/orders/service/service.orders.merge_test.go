package ordersvc

import (
	"testing"

	models "github.com/Lmineck/ordering-system/internal/api/orders/models"
)

func item(name, category, unit string, quantity int) models.OrderItem {
	return models.OrderItem{Name: name, Category: category, Unit: unit, Quantity: quantity}
}

func TestMergeOrderItems_CongDonSoLuong(t *testing.T) {
	existing := []models.OrderItem{
		item("táo", "trái cây", "kg", 2),
	}
	incoming := []models.OrderItem{
		item("táo", "trái cây", "kg", 3),
		item("chuối", "trái cây", "kg", 1),
	}

	merged := MergeOrderItems(existing, incoming)

	if len(merged) != 2 {
		t.Fatalf("Mong đợi 2 dòng sau khi gộp, nhận được %d", len(merged))
	}
	if merged[0].Name != "táo" || merged[0].Quantity != 5 {
		t.Errorf("Dòng trùng khóa phải cộng dồn: mong đợi táo=5, nhận được %s=%d", merged[0].Name, merged[0].Quantity)
	}
	if merged[1].Name != "chuối" || merged[1].Quantity != 1 {
		t.Errorf("Dòng mới phải nối vào cuối: mong đợi chuối=1, nhận được %s=%d", merged[1].Name, merged[1].Quantity)
	}
}

func TestMergeOrderItems_KhacKhoaThiKhongGop(t *testing.T) {
	existing := []models.OrderItem{
		item("trứng", "thực phẩm", "vỉ", 3),
	}
	incoming := []models.OrderItem{
		item("trứng", "thực phẩm", "quả", 10), // khác unit
		item("trứng", "đồ tươi", "vỉ", 2),     // khác category
	}

	merged := MergeOrderItems(existing, incoming)

	if len(merged) != 3 {
		t.Fatalf("Khác (name, category, unit) thì không được gộp: mong đợi 3 dòng, nhận được %d", len(merged))
	}
	if merged[0].Quantity != 3 {
		t.Errorf("Dòng hiện có không được thay đổi: mong đợi 3, nhận được %d", merged[0].Quantity)
	}
}

func TestMergeOrderItems_KhongSuaSliceGoc(t *testing.T) {
	existing := []models.OrderItem{
		item("hành", "rau củ", "kg", 1),
	}
	incoming := []models.OrderItem{
		item("hành", "rau củ", "kg", 4),
	}

	_ = MergeOrderItems(existing, incoming)

	if existing[0].Quantity != 1 {
		t.Errorf("Slice gốc không được bị sửa: mong đợi 1, nhận được %d", existing[0].Quantity)
	}
}

func TestMergeRequestNote(t *testing.T) {
	if got := MergeRequestNote("gấp", "thêm hành"); got != "gấp\nthêm hành" {
		t.Errorf("Ghi chú phải nối bằng xuống dòng, nhận được %q", got)
	}
	if got := MergeRequestNote("gấp", ""); got != "gấp" {
		t.Errorf("Ghi chú mới rỗng phải giữ nguyên ghi chú cũ, nhận được %q", got)
	}
	if got := MergeRequestNote("", "thêm hành"); got != "thêm hành" {
		t.Errorf("Ghi chú cũ rỗng phải trả về ghi chú mới, nhận được %q", got)
	}
	if got := MergeRequestNote("", ""); got != "" {
		t.Errorf("Cả hai rỗng phải trả về chuỗi rỗng, nhận được %q", got)
	}
}

func TestAggregateItems_TongHopTheoTen(t *testing.T) {
	orders := []models.Order{
		{
			Branch: "오일내본점",
			Items: []models.OrderItem{
				item("trứng", "thực phẩm", "vỉ", 3),
				item("táo", "trái cây", "kg", 2),
			},
		},
		{
			Branch: "오일내강남점",
			Items: []models.OrderItem{
				item("trứng", "thực phẩm", "quả", 2), // khác unit vẫn cộng chung
			},
		},
	}

	result := AggregateItems(orders)

	if len(result) != 2 {
		t.Fatalf("Mong đợi 2 nguyên liệu, nhận được %d", len(result))
	}
	// Sắp theo tên: "trứng" > "táo" theo thứ tự byte UTF-8? Kiểm tra bằng tra cứu.
	byName := make(map[string]AggregatedItem)
	for _, agg := range result {
		byName[agg.Name] = agg
	}
	egg, ok := byName["trứng"]
	if !ok {
		t.Fatal("Thiếu nguyên liệu trứng trong kết quả tổng hợp")
	}
	if egg.Quantity != 5 {
		t.Errorf("Tổng hợp theo tên trên mọi chi nhánh: mong đợi trứng=5, nhận được %d", egg.Quantity)
	}
	if egg.Unit != "vỉ" {
		t.Errorf("Unit phải lấy theo dòng gặp đầu tiên: mong đợi vỉ, nhận được %s", egg.Unit)
	}
	if apple := byName["táo"]; apple.Quantity != 2 {
		t.Errorf("Mong đợi táo=2, nhận được %d", apple.Quantity)
	}
}

func TestAggregateItems_DonRong(t *testing.T) {
	result := AggregateItems(nil)
	if len(result) != 0 {
		t.Errorf("Không có đơn thì kết quả phải rỗng, nhận được %d phần tử", len(result))
	}
}
