package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// CouponController 优惠券
type CouponController struct {
	couponService *service.CouponService
}

func NewCouponController(couponService *service.CouponService) *CouponController {
	return &CouponController{couponService: couponService}
}

// List 优惠券列表
// @Summary 优惠券列表 (含 Active / Expired / Used Up 状态)
// @Tags Coupon
// @Security BearerAuth
// @Success 200 {array} service.CouponView
// @Router /api/coupons [get]
func (ctrl *CouponController) List(c *gin.Context) {
	list, err := ctrl.couponService.List(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// Create 创建优惠券
// @Summary 创建优惠券
// @Tags Coupon
// @Security BearerAuth
// @Accept json
// @Param body body dto.CouponRequest true "优惠券"
// @Success 200 {object} map[string]interface{}
// @Router /api/coupons [post]
func (ctrl *CouponController) Create(c *gin.Context) {
	coupon, ok := bindCoupon(c)
	if !ok {
		return
	}
	if err := ctrl.couponService.Create(c.Request.Context(), actor(c), coupon); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Coupon created successfully", nil)
}

// Update 编辑优惠券
// @Summary 编辑优惠券
// @Tags Coupon
// @Security BearerAuth
// @Accept json
// @Param id path string true "优惠券ID"
// @Param body body dto.CouponRequest true "优惠券"
// @Success 200 {object} map[string]interface{}
// @Router /api/coupons/{id} [put]
func (ctrl *CouponController) Update(c *gin.Context) {
	coupon, ok := bindCoupon(c)
	if !ok {
		return
	}
	if err := ctrl.couponService.Update(c.Request.Context(), actor(c), c.Param("id"), coupon); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Coupon updated successfully", nil)
}

// Delete 删除优惠券
// @Summary 删除优惠券
// @Tags Coupon
// @Security BearerAuth
// @Param id path string true "优惠券ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/coupons/{id} [delete]
func (ctrl *CouponController) Delete(c *gin.Context) {
	if err := ctrl.couponService.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Coupon deleted successfully", nil)
}

// bindCoupon 解析请求体，失败时已写响应
func bindCoupon(c *gin.Context) (model.Coupon, bool) {
	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return model.Coupon{}, false
	}
	minimum, err := parseAmount("minimumAmount", req.MinimumAmount)
	if err != nil {
		respondError(c, err)
		return model.Coupon{}, false
	}
	return model.Coupon{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		MinimumAmount:      minimum,
		ExpiryDate:         req.ExpiryDate,
		MaxUsage:           req.MaxUsage,
	}, true
}
