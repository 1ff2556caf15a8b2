package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// DesignAssetController 设计素材 (首页图片)
type DesignAssetController struct {
	assetService *service.DesignAssetService
}

func NewDesignAssetController(assetService *service.DesignAssetService) *DesignAssetController {
	return &DesignAssetController{assetService: assetService}
}

// List 素材列表
// @Summary 设计素材列表
// @Tags DesignAsset
// @Security BearerAuth
// @Param category query string false "HERO / CIRCULAR / CARD / all"
// @Param isActive query bool false "是否启用"
// @Success 200 {array} model.DesignAsset
// @Router /api/design-assets [get]
func (ctrl *DesignAssetController) List(c *gin.Context) {
	var q dto.DesignAssetQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	list, err := ctrl.assetService.List(c.Request.Context(), q.Category, q.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// Gallery 已启用素材
// @Summary 某分类下已启用的素材
// @Tags DesignAsset
// @Security BearerAuth
// @Param category path string true "HERO / CIRCULAR / CARD"
// @Success 200 {array} model.DesignAsset
// @Router /api/design-assets/gallery/{category} [get]
func (ctrl *DesignAssetController) Gallery(c *gin.Context) {
	list, err := ctrl.assetService.Gallery(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// Create 上传素材
// @Summary 上传设计素材 (最大 10MB)
// @Tags DesignAsset
// @Security BearerAuth
// @Accept multipart/form-data
// @Param category formData string false "HERO / CIRCULAR / CARD"
// @Param isActive formData bool false "是否启用" default(true)
// @Param image formData file true "图片"
// @Success 200 {object} map[string]interface{}
// @Router /api/design-assets [post]
func (ctrl *DesignAssetController) Create(c *gin.Context) {
	in, ok := bindDesignAsset(c)
	if !ok {
		return
	}
	if err := ctrl.assetService.Create(c.Request.Context(), actor(c), in); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Design asset uploaded successfully", nil)
}

// Update 编辑素材
// @Summary 编辑设计素材 (图片可选)
// @Tags DesignAsset
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path string true "素材ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/design-assets/{id} [put]
func (ctrl *DesignAssetController) Update(c *gin.Context) {
	in, ok := bindDesignAsset(c)
	if !ok {
		return
	}
	if err := ctrl.assetService.Update(c.Request.Context(), actor(c), c.Param("id"), in); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Design asset updated successfully", nil)
}

// Delete 删除素材
// @Summary 删除设计素材
// @Tags DesignAsset
// @Security BearerAuth
// @Param id path string true "素材ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/design-assets/{id} [delete]
func (ctrl *DesignAssetController) Delete(c *gin.Context) {
	if err := ctrl.assetService.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Design asset deleted successfully", nil)
}

func bindDesignAsset(c *gin.Context) (service.DesignAssetInput, bool) {
	var form dto.DesignAssetForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return service.DesignAssetInput{}, false
	}
	image, err := formFile(c, "image")
	if err != nil {
		respondError(c, err)
		return service.DesignAssetInput{}, false
	}
	return service.DesignAssetInput{Category: form.Category, IsActive: form.IsActive, Image: image}, true
}
