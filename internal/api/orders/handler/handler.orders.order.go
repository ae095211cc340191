// Package ordershdl xử lý request cho đơn đặt hàng.
package ordershdl

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	basehdl "github.com/Lmineck/ordering-system/internal/api/base/handler"
	authmodels "github.com/Lmineck/ordering-system/internal/api/auth/models"
	ordersdto "github.com/Lmineck/ordering-system/internal/api/orders/dto"
	models "github.com/Lmineck/ordering-system/internal/api/orders/models"
	ordersvc "github.com/Lmineck/ordering-system/internal/api/orders/service"
	"github.com/Lmineck/ordering-system/internal/common"
	"github.com/Lmineck/ordering-system/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateKeyRegex kiểm tra tham số date dạng yyyyMMdd
var dateKeyRegex = regexp.MustCompile(`^\d{8}$`)

// OrderHandler xử lý các request đơn đặt hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, ordersdto.OrderCreateInput, ordersdto.OrderUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, ordersdto.OrderCreateInput, ordersdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

// InsertOne gửi đơn hàng của chi nhánh đang đăng nhập, gộp vào đơn cùng ngày nếu có.
// Che phương thức InsertOne của BaseHandler: branch lấy từ Locals, không nhận từ body.
func (h *OrderHandler) InsertOne(c fiber.Ctx) error {
	branch, _ := c.Locals("user_branch").(string)
	if branch == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Tài khoản chưa gắn chi nhánh", common.StatusForbidden, nil))
		return nil
	}

	var input ordersdto.OrderCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	order, err := h.orderService.Submit(c.Context(), branch, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, order, nil)
	return nil
}

// HandleByDate trả về đơn của mọi chi nhánh trong một ngày. Query: date=yyyyMMdd.
func (h *OrderHandler) HandleByDate(c fiber.Ctx) error {
	dateKey, err := h.dateParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	orders, err := h.orderService.ByDate(c.Context(), dateKey)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, orders, nil)
	return nil
}

// HandleByBranch trả về lịch sử đơn theo chi nhánh, phân trang 5 đơn.
// Tài khoản thường chỉ xem được chi nhánh của mình, admin xem được mọi chi nhánh.
func (h *OrderHandler) HandleByBranch(c fiber.Ctx) error {
	role, _ := c.Locals("user_role").(string)
	ownBranch, _ := c.Locals("user_branch").(string)

	branch := c.Query("branch")
	if branch == "" {
		branch = ownBranch
	}
	if role != authmodels.RoleAdmin && branch != ownBranch {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthRole, "Chỉ được xem lịch sử của chi nhánh mình", common.StatusForbidden, nil))
		return nil
	}
	if branch == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số branch", common.StatusBadRequest, nil))
		return nil
	}

	page := h.pageParam(c)
	result, err := h.orderService.ByBranch(c.Context(), branch, page)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, result, nil)
	return nil
}

// HandleDates trả về danh sách các ngày có đơn hàng, phân trang 5 ngày.
func (h *OrderHandler) HandleDates(c fiber.Ctx) error {
	page := h.pageParam(c)
	result, err := h.orderService.Dates(c.Context(), page)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, result, nil)
	return nil
}

// HandleAggregate tổng hợp nguyên liệu của một ngày theo tên.
// Query: date=yyyyMMdd bắt buộc, branch tùy chọn.
func (h *OrderHandler) HandleAggregate(c fiber.Ctx) error {
	dateKey, err := h.dateParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.orderService.Aggregate(c.Context(), dateKey, c.Query("branch"))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, result, nil)
	return nil
}

// UpdateById sửa dòng và ghi chú của đơn. Xóa hết dòng thì đơn bị xóa luôn.
// Che phương thức UpdateById của BaseHandler. Tài khoản thường chỉ sửa đơn
// của chi nhánh mình.
func (h *OrderHandler) UpdateById(c fiber.Ctx) error {
	objID, err := h.paramObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input ordersdto.OrderUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.checkOrderAccess(c, objID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	order, err := h.orderService.Update(c.Context(), objID, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, order, nil)
	return nil
}

// HandleUpdateStatus chuyển trạng thái đơn hàng (chỉ admin, gate ở router).
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	objID, err := h.paramObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input ordersdto.OrderStatusInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	order, err := h.orderService.UpdateStatus(c.Context(), objID, input.Status)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, order, nil)
	return nil
}

// checkOrderAccess chặn tài khoản thường thao tác lên đơn của chi nhánh khác
// hoặc đơn của ngày trước.
func (h *OrderHandler) checkOrderAccess(c fiber.Ctx, orderID primitive.ObjectID) error {
	role, _ := c.Locals("user_role").(string)
	if role == authmodels.RoleAdmin {
		return nil
	}
	ownBranch, _ := c.Locals("user_branch").(string)
	order, err := h.orderService.FindOneById(c.Context(), orderID)
	if err != nil {
		return err
	}
	return verifyOrderEditable(role, ownBranch, order, time.Now())
}

// verifyOrderEditable kiểm tra quyền sửa dòng của một đơn: admin sửa được mọi
// đơn, tài khoản chi nhánh chỉ sửa đơn của chi nhánh mình và chỉ trong đúng
// ngày gửi đơn.
func verifyOrderEditable(role, ownBranch string, order models.Order, now time.Time) error {
	if role == authmodels.RoleAdmin {
		return nil
	}
	if order.Branch != ownBranch {
		return common.NewError(common.ErrCodeAuthRole, "Chỉ được sửa đơn của chi nhánh mình", common.StatusForbidden, nil)
	}
	if utility.DateKey(order.OrderDate) != utility.DateKey(utility.FormatCompactTime(now)) {
		return common.NewError(common.ErrCodeBusinessState, "Chỉ được sửa đơn trong ngày gửi đơn", common.StatusForbidden, nil)
	}
	return nil
}

// dateParam lấy và kiểm tra query date dạng yyyyMMdd
func (h *OrderHandler) dateParam(c fiber.Ctx) (string, error) {
	dateKey := c.Query("date")
	if !dateKeyRegex.MatchString(dateKey) {
		return "", common.NewError(common.ErrCodeValidationFormat, "Tham số date phải có dạng yyyyMMdd", common.StatusBadRequest, nil)
	}
	return dateKey, nil
}

// pageParam lấy query page, mặc định 1
func (h *OrderHandler) pageParam(c fiber.Ctx) int64 {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// paramObjectID lấy và parse param :id thành ObjectID
func (h *OrderHandler) paramObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err)
	}
	return objID, nil
}
