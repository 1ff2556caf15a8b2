package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// OrderController 订单
type OrderController struct {
	orderService *service.OrderService
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// List 订单列表
// @Summary 订单列表 (含型号、合集与退货统计)
// @Tags Order
// @Security BearerAuth
// @Success 200 {array} dto.OrderListItem
// @Router /api/orders [get]
func (ctrl *OrderController) List(c *gin.Context) {
	orders, err := ctrl.orderService.List(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	list := make([]dto.OrderListItem, 0, len(orders))
	for i := range orders {
		list = append(list, dto.OrderListItem{Order: orders[i], Summary: service.Summarize(&orders[i])})
	}
	respondOK(c, list)
}

// Get 订单详情
// @Summary 订单详情 (按型号、合集分组)
// @Tags Order
// @Security BearerAuth
// @Param id path string true "订单ID"
// @Success 200 {object} dto.OrderDetailResp
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) Get(c *gin.Context) {
	order, err := ctrl.orderService.Get(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.NewOrderDetail(order))
}

// UpdateStatus 修改订单状态
// @Summary 修改订单状态
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Param id path string true "订单ID"
// @Param body body dto.UpdateOrderStatusRequest true "新状态"
// @Success 200 {object} map[string]interface{}
// @Router /api/orders/{id}/status [put]
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	if err := ctrl.orderService.UpdateStatus(c.Request.Context(), actor(c), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Order status updated", nil)
}

// UpdateTracking 更新物流信息
// @Summary 更新物流信息
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Param id path string true "订单ID"
// @Param body body dto.UpdateTrackingRequest true "物流信息"
// @Success 200 {object} map[string]interface{}
// @Router /api/orders/{id}/tracking [put]
func (ctrl *OrderController) UpdateTracking(c *gin.Context) {
	var req dto.UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	err := ctrl.orderService.UpdateTracking(c.Request.Context(), actor(c), model.TrackingInfo{
		OrderID:        c.Param("id"),
		TrackingNumber: req.TrackingNumber,
		CourierPartner: req.CourierPartner,
		TrackingLink:   req.TrackingLink,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Tracking information updated", nil)
}

// Return 审批退货
// @Summary 批准或拒绝退货申请
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Param id path string true "订单ID"
// @Param body body dto.ReturnDecisionRequest true "审批结果"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "非待处理或拒绝未填原因"
// @Router /api/orders/{id}/return [put]
func (ctrl *OrderController) Return(c *gin.Context) {
	var req dto.ReturnDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	approve := req.Status == model.ReturnStatusApproved
	if err := ctrl.orderService.AdjudicateReturnByID(c.Request.Context(), actor(c), c.Param("id"), approve, req.AdminNote); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Return request "+req.Status, nil)
}

// Delete 删除订单
// @Summary 删除订单 (仅已送达或已取消)
// @Tags Order
// @Security BearerAuth
// @Param id path string true "订单ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/orders/{id} [delete]
func (ctrl *OrderController) Delete(c *gin.Context) {
	if err := ctrl.orderService.DeleteByID(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Order deleted successfully", nil)
}
