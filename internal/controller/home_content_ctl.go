package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// HomeContentController 首页配置：提示、站点设置、主推与推荐商品
type HomeContentController struct {
	homeService *service.HomeContentService
}

func NewHomeContentController(homeService *service.HomeContentService) *HomeContentController {
	return &HomeContentController{homeService: homeService}
}

// ==================== 合集提示 ====================

// Tooltips 合集数量提示
// @Summary 合集数量提示 (按数量升序)
// @Tags HomeContent
// @Security BearerAuth
// @Success 200 {array} model.CollectionTooltip
// @Router /api/tooltips [get]
func (ctrl *HomeContentController) Tooltips(c *gin.Context) {
	list, err := ctrl.homeService.Tooltips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// SaveTooltips 整体替换提示
// @Summary 保存合集数量提示 (整体替换)
// @Tags HomeContent
// @Security BearerAuth
// @Accept json
// @Param body body dto.TooltipsRequest true "提示列表"
// @Success 200 {object} map[string]interface{}
// @Router /api/tooltips [put]
func (ctrl *HomeContentController) SaveTooltips(c *gin.Context) {
	var req dto.TooltipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	if err := ctrl.homeService.SaveTooltips(c.Request.Context(), actor(c), req.Tooltips); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Tooltips saved successfully", nil)
}

// ==================== 站点设置 ====================

// Settings 站点设置
// @Summary 首页站点设置
// @Tags HomeContent
// @Security BearerAuth
// @Success 200 {object} model.SiteSettings
// @Router /api/settings [get]
func (ctrl *HomeContentController) Settings(c *gin.Context) {
	s, err := ctrl.homeService.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, s)
}

// SaveSettings 保存站点设置
// @Summary 保存首页站点设置
// @Tags HomeContent
// @Security BearerAuth
// @Accept json
// @Param body body model.SiteSettings true "设置"
// @Success 200 {object} model.SiteSettings
// @Router /api/settings [put]
func (ctrl *HomeContentController) SaveSettings(c *gin.Context) {
	var req model.SiteSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	s, err := ctrl.homeService.SaveSettings(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Settings saved successfully", s)
}

// ResetSettings 恢复默认
// @Summary 站点设置恢复默认
// @Tags HomeContent
// @Security BearerAuth
// @Success 200 {object} model.SiteSettings
// @Failure 429 {object} map[string]interface{} "操作过于频繁"
// @Router /api/settings/reset [post]
func (ctrl *HomeContentController) ResetSettings(c *gin.Context) {
	s, err := ctrl.homeService.ResetSettings(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Settings reset to defaults", s)
}

// ==================== 主推商品 ====================

// Featured 主推商品
// @Summary 首页主推商品 (最多 2 个)
// @Tags HomeContent
// @Security BearerAuth
// @Success 200 {array} model.FeaturedHomeProduct
// @Router /api/featured-products [get]
func (ctrl *HomeContentController) Featured(c *gin.Context) {
	list, err := ctrl.homeService.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// CreateFeatured 添加主推商品
// @Summary 添加主推商品
// @Tags HomeContent
// @Security BearerAuth
// @Accept multipart/form-data
// @Param name formData string true "名称"
// @Param displayOrder formData int false "排序"
// @Param isActive formData bool false "是否启用" default(true)
// @Param image formData file true "图片"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "已达上限"
// @Router /api/featured-products [post]
func (ctrl *HomeContentController) CreateFeatured(c *gin.Context) {
	ctrl.saveFeatured(c, "")
}

// UpdateFeatured 编辑主推商品
// @Summary 编辑主推商品 (图片可选)
// @Tags HomeContent
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path string true "ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/featured-products/{id} [put]
func (ctrl *HomeContentController) UpdateFeatured(c *gin.Context) {
	ctrl.saveFeatured(c, c.Param("id"))
}

func (ctrl *HomeContentController) saveFeatured(c *gin.Context, id string) {
	var form dto.FeaturedForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	image, err := formFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	p := model.FeaturedHomeProduct{Name: form.Name, DisplayOrder: form.DisplayOrder, IsActive: form.IsActive}
	if err := ctrl.homeService.SaveFeatured(c.Request.Context(), actor(c), id, p, image); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Featured product saved successfully", nil)
}

// DeleteFeatured 删除主推商品
// @Summary 删除主推商品
// @Tags HomeContent
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/featured-products/{id} [delete]
func (ctrl *HomeContentController) DeleteFeatured(c *gin.Context) {
	if err := ctrl.homeService.DeleteFeatured(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Featured product deleted successfully", nil)
}

// ==================== 推荐商品 ====================

// Suggested 推荐商品
// @Summary 推荐商品列表
// @Tags HomeContent
// @Security BearerAuth
// @Success 200 {array} model.SuggestedProduct
// @Router /api/suggested-products [get]
func (ctrl *HomeContentController) Suggested(c *gin.Context) {
	list, err := ctrl.homeService.Suggested(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// CreateSuggested 添加推荐商品
// @Summary 添加推荐商品
// @Tags HomeContent
// @Security BearerAuth
// @Accept multipart/form-data
// @Param name formData string true "名称"
// @Param price formData string true "价格"
// @Param description formData string false "描述"
// @Param image formData file false "图片"
// @Success 200 {object} map[string]interface{}
// @Router /api/suggested-products [post]
func (ctrl *HomeContentController) CreateSuggested(c *gin.Context) {
	ctrl.saveSuggested(c, "")
}

// UpdateSuggested 编辑推荐商品
// @Summary 编辑推荐商品
// @Tags HomeContent
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path string true "ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/suggested-products/{id} [put]
func (ctrl *HomeContentController) UpdateSuggested(c *gin.Context) {
	ctrl.saveSuggested(c, c.Param("id"))
}

func (ctrl *HomeContentController) saveSuggested(c *gin.Context, id string) {
	var form dto.SuggestedForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	price, err := parseAmount("price", form.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	image, err := formFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	p := model.SuggestedProduct{
		Name:         form.Name,
		Price:        price,
		Description:  form.Description,
		DisplayOrder: form.DisplayOrder,
		IsActive:     form.IsActive,
	}
	if err := ctrl.homeService.SaveSuggested(c.Request.Context(), actor(c), id, p, image); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Suggested product saved successfully", nil)
}

// DeleteSuggested 删除推荐商品
// @Summary 删除推荐商品
// @Tags HomeContent
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/suggested-products/{id} [delete]
func (ctrl *HomeContentController) DeleteSuggested(c *gin.Context) {
	if err := ctrl.homeService.DeleteSuggested(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Suggested product deleted successfully", nil)
}
