package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/validation"
)

const (
	NoModelBucket      = "No Model Specified"
	NoCollectionBucket = "No Collection"
	CustomDesignName   = "Custom Design"
)

// OrderService 订单管理
// 状态合法性由后端判断，这里只校验取值
type OrderService struct {
	repo  repository.OrderRepository
	audit *AuditService
}

func NewOrderService(repo repository.OrderRepository, audit *AuditService) *OrderService {
	return &OrderService{repo: repo, audit: audit}
}

// ==================== 查询 ====================

func (s *OrderService) List(ctx context.Context, who Actor) ([]model.Order, error) {
	return s.repo.List(ctx, who.Token)
}

func (s *OrderService) Get(ctx context.Context, who Actor, id string) (*model.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invalid("id", "Order id is required")
	}
	return s.repo.Get(ctx, who.Token, id)
}

// ==================== 状态变更 ====================

// UpdateStatus 任意已知状态之间可直接切换
func (s *OrderService) UpdateStatus(ctx context.Context, who Actor, id, status string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("orderId", "Order id is required")
	}
	if !model.IsOrderStatus(status) {
		return invalid("status", "Unknown order status %q", status)
	}
	err := s.repo.UpdateStatus(ctx, who.Token, id, status)
	s.audit.Record(ctx, who, model.AuditActionStatus, "order", id, map[string]string{"status": status}, err)
	return err
}

// UpdateTracking 物流信息为自由文本，仅校验链接格式
func (s *OrderService) UpdateTracking(ctx context.Context, who Actor, info model.TrackingInfo) error {
	if strings.TrimSpace(info.OrderID) == "" {
		return invalid("orderId", "Order id is required")
	}
	info.TrackingNumber = strings.TrimSpace(info.TrackingNumber)
	info.CourierPartner = strings.TrimSpace(info.CourierPartner)
	info.TrackingLink = strings.TrimSpace(info.TrackingLink)
	if info.TrackingLink != "" && !validation.ValidateURL(info.TrackingLink) {
		return invalid("trackingLink", "Please enter a valid tracking link")
	}

	err := s.repo.UpdateTracking(ctx, who.Token, info)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "order_tracking", info.OrderID, info, err)
	return err
}

// AdjudicateReturn 审批退货申请
// 仅 Pending 状态可处理；拒绝必须填写原因，批准备注可选
func (s *OrderService) AdjudicateReturn(ctx context.Context, who Actor, order *model.Order, approve bool, note string) error {
	if order == nil {
		return invalid("orderId", "Order not found")
	}
	if !CanAdjudicateReturn(order) {
		return invalid("returnRequest", "Return request is not pending")
	}

	note = strings.TrimSpace(note)
	status := model.ReturnStatusApproved
	if !approve {
		status = model.ReturnStatusRejected
		if note == "" {
			return invalid("adminNote", "Please provide a reason for rejection")
		}
	}

	err := s.repo.UpdateReturnStatus(ctx, who.Token, order.ID, status, note)
	s.audit.Record(ctx, who, model.AuditActionStatus, "order_return", order.ID, map[string]string{"status": status, "adminNote": note}, err)
	return err
}

// AdjudicateReturnByID 先取订单再审批
func (s *OrderService) AdjudicateReturnByID(ctx context.Context, who Actor, id string, approve bool, note string) error {
	order, err := s.Get(ctx, who, id)
	if err != nil {
		return err
	}
	return s.AdjudicateReturn(ctx, who, order, approve, note)
}

// Delete 仅已送达或已取消的订单可删除
func (s *OrderService) Delete(ctx context.Context, who Actor, order *model.Order) error {
	if order == nil {
		return invalid("orderId", "Order not found")
	}
	if !CanDelete(order) {
		return invalid("status", "Only delivered or cancelled orders can be deleted")
	}
	err := s.repo.Delete(ctx, who.Token, order.ID)
	s.audit.Record(ctx, who, model.AuditActionDelete, "order", order.ID, nil, err)
	return err
}

// DeleteByID 先取订单确认状态再删除
func (s *OrderService) DeleteByID(ctx context.Context, who Actor, id string) error {
	order, err := s.Get(ctx, who, id)
	if err != nil {
		return err
	}
	return s.Delete(ctx, who, order)
}

// ==================== 展示规则 ====================

// CanDelete 是否展示删除
func CanDelete(o *model.Order) bool {
	return o != nil && (o.Status == model.OrderStatusDelivered || o.Status == model.OrderStatusCancelled)
}

// CanAdjudicateReturn 是否展示退货审批
func CanAdjudicateReturn(o *model.Order) bool {
	return o != nil && o.ReturnRequest != nil && o.ReturnRequest.Status == model.ReturnStatusPending
}

// ResolveItemImage 订单行展示图，按固定优先级取第一个非空
func ResolveItemImage(item model.OrderItem) string {
	candidates := []string{item.Image}
	if item.CustomDesign != nil {
		candidates = append(candidates, item.CustomDesign.DesignImageURL, item.CustomDesign.OriginalImageURL)
	}
	candidates = append(candidates, item.ProductImage, item.CollectionImage)
	if len(item.ProductID.Images) > 0 {
		candidates = append(candidates, item.ProductID.Images[0])
	}
	candidates = append(candidates, item.ProductID.Image, item.CollectionID.HeroImage)

	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// ItemDisplayName 订单行名称
func ItemDisplayName(item model.OrderItem) string {
	switch {
	case item.ProductName != "":
		return item.ProductName
	case item.Name != "":
		return item.Name
	case item.ProductID.Name != "":
		return item.ProductID.Name
	default:
		return CustomDesignName
	}
}

// ItemCollectionName 订单行所属合集名
func ItemCollectionName(item model.OrderItem) string {
	if item.CollectionName != "" {
		return item.CollectionName
	}
	if item.CollectionID.Name != "" {
		return item.CollectionID.Name
	}
	return NoCollectionBucket
}

// ==================== 分组视图 ====================

// CollectionBucket 同一合集的订单行
type CollectionBucket struct {
	CollectionName string            `json:"collectionName"`
	Items          []model.OrderItem `json:"items"`
}

// ModelBucket 同一手机型号的订单行
type ModelBucket struct {
	PhoneModel  string             `json:"phoneModel"`
	Collections []CollectionBucket `json:"collections"`
	ItemCount   int                `json:"itemCount"`
}

// GroupItemsByModel 按手机型号、再按合集分组，组内保持原顺序，组按首次出现排序
func GroupItemsByModel(items []model.OrderItem) []ModelBucket {
	var buckets []ModelBucket
	modelIdx := map[string]int{}
	colIdx := map[string]map[string]int{}

	for _, item := range items {
		phone := strings.TrimSpace(item.PhoneModel)
		if phone == "" {
			phone = NoModelBucket
		}
		col := ItemCollectionName(item)

		mi, ok := modelIdx[phone]
		if !ok {
			mi = len(buckets)
			modelIdx[phone] = mi
			colIdx[phone] = map[string]int{}
			buckets = append(buckets, ModelBucket{PhoneModel: phone})
		}
		b := &buckets[mi]

		ci, ok := colIdx[phone][col]
		if !ok {
			ci = len(b.Collections)
			colIdx[phone][col] = ci
			b.Collections = append(b.Collections, CollectionBucket{CollectionName: col})
		}
		b.Collections[ci].Items = append(b.Collections[ci].Items, item)
		b.ItemCount++
	}
	return buckets
}

// OrderSummary 订单统计
type OrderSummary struct {
	ItemCount        int      `json:"itemCount"`
	PlateCount       int      `json:"plateCount"`
	Models           []string `json:"models"`
	Collections      []string `json:"collections"`
	CanDelete        bool     `json:"canDelete"`
	CanAdjudicate    bool     `json:"canAdjudicateReturn"`
	HasReturnRequest bool     `json:"hasReturnRequest"`
}

// Summarize 不同型号、合集数量等列表展示信息
func Summarize(o *model.Order) OrderSummary {
	models := map[string]bool{}
	cols := map[string]bool{}
	qty := 0
	for _, it := range o.Items {
		if m := strings.TrimSpace(it.PhoneModel); m != "" {
			models[m] = true
		}
		if c := ItemCollectionName(it); c != NoCollectionBucket {
			cols[c] = true
		}
		qty += it.Quantity
	}
	plates := 0
	for _, p := range o.Plates {
		plates += p.Quantity
	}

	return OrderSummary{
		ItemCount:        qty,
		PlateCount:       plates,
		Models:           sortedKeys(models),
		Collections:      sortedKeys(cols),
		CanDelete:        CanDelete(o),
		CanAdjudicate:    CanAdjudicateReturn(o),
		HasReturnRequest: o.ReturnRequest != nil && o.ReturnRequest.IsRequested,
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
