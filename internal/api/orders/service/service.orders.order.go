package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	basemodels "github.com/Lmineck/ordering-system/internal/api/base/models"
	basesvc "github.com/Lmineck/ordering-system/internal/api/base/service"
	ordersdto "github.com/Lmineck/ordering-system/internal/api/orders/dto"
	models "github.com/Lmineck/ordering-system/internal/api/orders/models"
	"github.com/Lmineck/ordering-system/internal/common"
	"github.com/Lmineck/ordering-system/internal/global"
	"github.com/Lmineck/ordering-system/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BranchPageSize là số đơn mỗi trang khi xem lịch sử theo chi nhánh và danh sách ngày.
const BranchPageSize = 5

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn đặt hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
	}, nil
}

// dayFilter trả về filter các đơn trong một ngày (dateKey dạng yyyyMMdd),
// kèm chi nhánh nếu branch khác rỗng.
func dayFilter(dateKey string, branch string) bson.M {
	start, end := utility.DayRange(dateKey)
	filter := bson.M{"orderDate": bson.M{"$gte": start, "$lte": end}}
	if branch != "" {
		filter["branch"] = branch
	}
	return filter
}

// Submit ghi nhận đơn hàng của một chi nhánh.
// Nếu chi nhánh đã có đơn trong cùng ngày, đơn mới được GỘP vào đơn cũ:
// dòng trùng (name, category, unit) cộng dồn quantity, ghi chú nối bằng
// xuống dòng, orderDate lấy theo lần gửi mới nhất. Khác ngày hoặc khác
// chi nhánh thì không bao giờ gộp.
func (s *OrderService) Submit(ctx context.Context, branch string, input *ordersdto.OrderCreateInput) (*models.Order, error) {
	orderDate := utility.FormatCompactTime(time.Now())
	newItems := toOrderItems(input.Items)

	existing, err := s.BaseServiceMongoImpl.FindOne(ctx, dayFilter(utility.DateKey(orderDate), branch), nil)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}

		// Chưa có đơn trong ngày, tạo đơn mới
		order := models.Order{
			Items:       newItems,
			Branch:      branch,
			OrderDate:   orderDate,
			Status:      models.StatusPending,
			RequestNote: input.RequestNote,
		}
		created, err := s.BaseServiceMongoImpl.InsertOne(ctx, order)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"order_id": created.ID.Hex(), "branch": branch, "items": len(created.Items)}).Info("Submit: Tạo đơn hàng mới")
		return &created, nil
	}

	// Đã có đơn cùng chi nhánh cùng ngày, gộp vào đơn cũ
	mergedItems := MergeOrderItems(existing.Items, newItems)
	mergedNote := MergeRequestNote(existing.RequestNote, input.RequestNote)

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"items":       mergedItems,
			"requestNote": mergedNote,
			"orderDate":   orderDate,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, existing.ID, updateData)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"order_id": updated.ID.Hex(), "branch": branch, "items": len(updated.Items)}).Info("Submit: Gộp đơn hàng vào đơn cùng ngày")
	return &updated, nil
}

// ByDate trả về đơn của TẤT CẢ chi nhánh trong một ngày (dateKey yyyyMMdd).
func (s *OrderService) ByDate(ctx context.Context, dateKey string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "branch", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, dayFilter(dateKey, ""), opts)
}

// ByBranch trả về lịch sử đơn của một chi nhánh, mới nhất trước, mỗi trang 5 đơn.
func (s *OrderService) ByBranch(ctx context.Context, branch string, page int64) (*basemodels.PaginateResult[models.Order], error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, bson.M{"branch": branch}, page, BranchPageSize, opts)
}

// Dates trả về danh sách các ngày có đơn hàng (yyyyMMdd), mới nhất trước,
// phân trang 5 ngày mỗi trang.
func (s *OrderService) Dates(ctx context.Context, page int64) (*basemodels.PaginateResult[string], error) {
	raw, err := s.BaseServiceMongoImpl.Distinct(ctx, "orderDate", bson.D{})
	if err != nil {
		return nil, err
	}

	// orderDate là timestamp đầy đủ nên phải rút về dateKey rồi khử trùng lặp
	seen := make(map[string]bool)
	dateKeys := make([]string, 0, len(raw))
	for _, v := range raw {
		orderDate, ok := v.(string)
		if !ok {
			continue
		}
		key := utility.DateKey(orderDate)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		dateKeys = append(dateKeys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dateKeys)))

	if page < 1 {
		page = 1
	}
	total := int64(len(dateKeys))
	startIdx := (page - 1) * BranchPageSize
	endIdx := startIdx + BranchPageSize
	if startIdx > total {
		startIdx = total
	}
	if endIdx > total {
		endIdx = total
	}

	items := dateKeys[startIdx:endIdx]
	result := &basemodels.PaginateResult[string]{
		Page:      page,
		Limit:     BranchPageSize,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: (total + BranchPageSize - 1) / BranchPageSize,
	}
	return result, nil
}

// Aggregate tổng hợp nguyên liệu của một ngày theo tên, cộng trên các
// chi nhánh (hoặc chỉ một chi nhánh nếu branch khác rỗng).
func (s *OrderService) Aggregate(ctx context.Context, dateKey string, branch string) ([]AggregatedItem, error) {
	orders, err := s.BaseServiceMongoImpl.Find(ctx, dayFilter(dateKey, branch), nil)
	if err != nil {
		return nil, err
	}
	return AggregateItems(orders), nil
}

// Update thay danh sách dòng và ghi chú của đơn. Danh sách rỗng nghĩa là
// mọi dòng đã bị xóa: đơn bị xóa luôn và trả về nil.
func (s *OrderService) Update(ctx context.Context, orderID primitive.ObjectID, input *ordersdto.OrderUpdateInput) (*models.Order, error) {
	if _, err := s.BaseServiceMongoImpl.FindOneById(ctx, orderID); err != nil {
		return nil, err
	}

	if len(input.Items) == 0 {
		if err := s.BaseServiceMongoImpl.DeleteById(ctx, orderID); err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"order_id": orderID.Hex()}).Info("Update: Đơn hàng không còn dòng nào, đã xóa")
		return nil, nil
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"items":       toOrderItems(input.Items),
			"requestNote": input.RequestNote,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, orderID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateStatus chuyển trạng thái đơn hàng.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái không hợp lệ: "+status, common.StatusBadRequest, nil)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": status,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, orderID, updateData)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"order_id": orderID.Hex(), "status": status}).Info("UpdateStatus: Chuyển trạng thái đơn hàng")
	return &updated, nil
}

// toOrderItems chuyển dòng DTO sang dòng model.
func toOrderItems(inputs []ordersdto.OrderItemInput) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.OrderItem{
			Name:     in.Name,
			Category: in.Category,
			Unit:     in.Unit,
			Quantity: in.Quantity,
		})
	}
	return items
}
