package catalogsvc

import (
	"testing"

	models "github.com/Lmineck/ordering-system/internal/api/catalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sortedItems tạo danh sách nguyên liệu đã sắp theo index tăng dần.
func sortedItems(indexes ...int) []models.Item {
	items := make([]models.Item, len(indexes))
	for i, idx := range indexes {
		items[i] = models.Item{ID: primitive.NewObjectID(), Index: idx}
	}
	return items
}

func TestPlanAdjacentSwap_DoiChoHaiPhanTuLienKe(t *testing.T) {
	items := sortedItems(1, 2, 3)

	// Chuyển phần tử giữa xuống: đổi index với phần tử cuối
	swap, err := planAdjacentSwap(items, items[1].ID, 1)
	if err != nil {
		t.Fatalf("planAdjacentSwap phải thành công: %v", err)
	}
	if swap == nil {
		t.Fatal("Vị trí giữa chuyển xuống không được là no-op")
	}
	if swap.FirstID != items[1].ID || swap.FirstIndex != 3 {
		t.Errorf("Phần tử giữa phải nhận index 3, nhận được id=%s index=%d", swap.FirstID.Hex(), swap.FirstIndex)
	}
	if swap.SecondID != items[2].ID || swap.SecondIndex != 2 {
		t.Errorf("Phần tử cuối phải nhận index 2, nhận được id=%s index=%d", swap.SecondID.Hex(), swap.SecondIndex)
	}
}

func TestPlanAdjacentSwap_ChuyenLen(t *testing.T) {
	items := sortedItems(1, 2, 3)

	swap, err := planAdjacentSwap(items, items[1].ID, -1)
	if err != nil {
		t.Fatalf("planAdjacentSwap phải thành công: %v", err)
	}
	if swap == nil {
		t.Fatal("Vị trí giữa chuyển lên không được là no-op")
	}
	// Chỉ đúng hai giá trị index của hai phần tử liền kề được hoán đổi
	if swap.FirstID != items[1].ID || swap.FirstIndex != 1 {
		t.Errorf("Phần tử giữa phải nhận index 1, nhận được index=%d", swap.FirstIndex)
	}
	if swap.SecondID != items[0].ID || swap.SecondIndex != 2 {
		t.Errorf("Phần tử đầu phải nhận index 2, nhận được index=%d", swap.SecondIndex)
	}
}

func TestPlanAdjacentSwap_BienLaNoOp(t *testing.T) {
	items := sortedItems(1, 2, 3)

	swap, err := planAdjacentSwap(items, items[0].ID, -1)
	if err != nil {
		t.Fatalf("Chuyển phần tử đầu lên không được trả về lỗi: %v", err)
	}
	if swap != nil {
		t.Error("Chuyển phần tử đầu lên phải là no-op")
	}

	swap, err = planAdjacentSwap(items, items[2].ID, 1)
	if err != nil {
		t.Fatalf("Chuyển phần tử cuối xuống không được trả về lỗi: %v", err)
	}
	if swap != nil {
		t.Error("Chuyển phần tử cuối xuống phải là no-op")
	}
}

func TestPlanAdjacentSwap_KhongThuocDanhSach(t *testing.T) {
	items := sortedItems(1, 2, 3)

	if _, err := planAdjacentSwap(items, primitive.NewObjectID(), 1); err == nil {
		t.Error("Nguyên liệu không thuộc danh sách phải trả về lỗi")
	}
}

func TestPlanAdjacentSwap_IndexCoKhoangTrong(t *testing.T) {
	// Index sau khi xóa có thể có khoảng trống, hoán đổi vẫn chỉ trao đổi
	// hai giá trị hiện có
	items := sortedItems(2, 5, 9)

	swap, err := planAdjacentSwap(items, items[0].ID, 1)
	if err != nil {
		t.Fatalf("planAdjacentSwap phải thành công: %v", err)
	}
	if swap.FirstIndex != 5 || swap.SecondIndex != 2 {
		t.Errorf("Hoán đổi phải giữ nguyên tập giá trị index, nhận được %d và %d", swap.FirstIndex, swap.SecondIndex)
	}
}
