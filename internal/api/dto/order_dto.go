package dto

import (
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// ==================== 订单列表 ====================

// OrderListItem 订单及其统计
type OrderListItem struct {
	model.Order
	Summary service.OrderSummary `json:"summary"`
}

// OrderItemView 订单行及解析后的展示信息
type OrderItemView struct {
	model.OrderItem
	DisplayName    string `json:"displayName"`
	DisplayImage   string `json:"displayImage"`
	CollectionName string `json:"displayCollection"`
}

// ModelGroupView 按手机型号分组
type ModelGroupView struct {
	PhoneModel  string                `json:"phoneModel"`
	ItemCount   int                   `json:"itemCount"`
	Collections []CollectionGroupView `json:"collections"`
}

// CollectionGroupView 型号下按合集分组
type CollectionGroupView struct {
	CollectionName string          `json:"collectionName"`
	Items          []OrderItemView `json:"items"`
}

// OrderDetailResp 订单详情
type OrderDetailResp struct {
	Order   *model.Order         `json:"order"`
	Summary service.OrderSummary `json:"summary"`
	Groups  []ModelGroupView     `json:"groups"`
}

// NewOrderDetail 组装订单详情视图
func NewOrderDetail(o *model.Order) *OrderDetailResp {
	resp := &OrderDetailResp{Order: o, Summary: service.Summarize(o), Groups: []ModelGroupView{}}
	for _, b := range service.GroupItemsByModel(o.Items) {
		g := ModelGroupView{PhoneModel: b.PhoneModel, ItemCount: b.ItemCount}
		for _, cb := range b.Collections {
			cg := CollectionGroupView{CollectionName: cb.CollectionName}
			for _, it := range cb.Items {
				cg.Items = append(cg.Items, OrderItemView{
					OrderItem:      it,
					DisplayName:    service.ItemDisplayName(it),
					DisplayImage:   service.ResolveItemImage(it),
					CollectionName: cb.CollectionName,
				})
			}
			g.Collections = append(g.Collections, cg)
		}
		resp.Groups = append(resp.Groups, g)
	}
	return resp
}

// ==================== 订单操作 ====================

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	CourierPartner string `json:"courierPartner"`
	TrackingLink   string `json:"trackingLink"`
}

// ReturnDecisionRequest 退货审批，status 为 Approved 或 Rejected
type ReturnDecisionRequest struct {
	Status    string `json:"status" binding:"required,oneof=Approved Rejected"`
	AdminNote string `json:"adminNote"`
}
