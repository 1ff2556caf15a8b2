package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// PhoneBrandController 手机品牌与型号
type PhoneBrandController struct {
	brandService *service.PhoneBrandService
}

func NewPhoneBrandController(brandService *service.PhoneBrandService) *PhoneBrandController {
	return &PhoneBrandController{brandService: brandService}
}

// List 品牌列表
// @Summary 品牌列表
// @Tags PhoneBrand
// @Security BearerAuth
// @Success 200 {array} model.PhoneBrand
// @Router /api/phone-brands [get]
func (ctrl *PhoneBrandController) List(c *gin.Context) {
	list, err := ctrl.brandService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// Create 创建品牌
// @Summary 创建品牌 (型号去重，忽略大小写)
// @Tags PhoneBrand
// @Security BearerAuth
// @Accept json
// @Param body body dto.BrandRequest true "品牌"
// @Success 200 {object} map[string]interface{}
// @Router /api/phone-brands [post]
func (ctrl *PhoneBrandController) Create(c *gin.Context) {
	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	draft := service.BrandDraft{BrandName: req.BrandName, Models: req.Models}
	if err := ctrl.brandService.Create(c.Request.Context(), actor(c), draft); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Brand created successfully", nil)
}

// Update 编辑品牌
// @Summary 编辑品牌
// @Tags PhoneBrand
// @Security BearerAuth
// @Accept json
// @Param id path string true "品牌ID"
// @Param body body dto.BrandRequest true "品牌"
// @Success 200 {object} map[string]interface{}
// @Router /api/phone-brands/{id} [put]
func (ctrl *PhoneBrandController) Update(c *gin.Context) {
	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	draft := service.BrandDraft{BrandName: req.BrandName, Models: req.Models}
	if err := ctrl.brandService.Update(c.Request.Context(), actor(c), c.Param("id"), draft); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Brand updated successfully", nil)
}

// Delete 删除品牌
// @Summary 删除品牌
// @Tags PhoneBrand
// @Security BearerAuth
// @Param id path string true "品牌ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/phone-brands/{id} [delete]
func (ctrl *PhoneBrandController) Delete(c *gin.Context) {
	if err := ctrl.brandService.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Brand deleted successfully", nil)
}

// AddModel 添加型号
// @Summary 品牌下添加型号
// @Tags PhoneBrand
// @Security BearerAuth
// @Accept json
// @Param id path string true "品牌ID"
// @Param body body dto.BrandModelRequest true "型号"
// @Success 200 {object} map[string]interface{}
// @Router /api/phone-brands/{id}/models [post]
func (ctrl *PhoneBrandController) AddModel(c *gin.Context) {
	var req dto.BrandModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	if err := ctrl.brandService.AddModel(c.Request.Context(), actor(c), c.Param("id"), req.ModelName); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Model added successfully", nil)
}

// RemoveModel 删除型号
// @Summary 删除品牌下的型号
// @Tags PhoneBrand
// @Security BearerAuth
// @Param id path string true "品牌ID"
// @Param modelName path string true "型号名称"
// @Success 200 {object} map[string]interface{}
// @Router /api/phone-brands/{id}/models/{modelName} [delete]
func (ctrl *PhoneBrandController) RemoveModel(c *gin.Context) {
	if err := ctrl.brandService.RemoveModel(c.Request.Context(), actor(c), c.Param("id"), c.Param("modelName")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Model removed successfully", nil)
}

// ToggleStatus 启用/停用
// @Summary 切换品牌启用状态
// @Tags PhoneBrand
// @Security BearerAuth
// @Param id path string true "品牌ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/phone-brands/{id}/toggle-status [patch]
func (ctrl *PhoneBrandController) ToggleStatus(c *gin.Context) {
	msg, err := ctrl.brandService.ToggleStatus(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, msg, nil)
}
