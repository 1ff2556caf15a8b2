package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// CatalogController 合集与分组
type CatalogController struct {
	catalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ==================== 列表 ====================

// Overview 商品目录总览
// @Summary 游戏合集、普通合集与游离商品
// @Description 并发拉取合集与商品，两者都返回后计算分类
// @Tags Catalog
// @Security BearerAuth
// @Success 200 {object} service.CatalogView
// @Failure 502 {object} map[string]interface{} "后端不可用"
// @Router /api/catalog [get]
func (ctrl *CatalogController) Overview(c *gin.Context) {
	view, err := ctrl.catalogService.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, view)
}

// ListCollections 全部合集
// @Summary 合集列表
// @Tags Catalog
// @Security BearerAuth
// @Success 200 {array} model.Collection
// @Router /api/collections [get]
func (ctrl *CatalogController) ListCollections(c *gin.Context) {
	list, err := ctrl.catalogService.ListCollections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// ==================== 合集 ====================

// CreateCollection 创建合集
// @Summary 创建合集
// @Tags Catalog
// @Security BearerAuth
// @Accept multipart/form-data
// @Param name formData string true "名称"
// @Param description formData string true "描述"
// @Param type formData string false "gaming / normal"
// @Param price formData string false "游戏合集价格"
// @Param plateprice formData string false "底板价格"
// @Param Features formData string false "卖点，逗号分隔"
// @Param heroImage formData file false "主图"
// @Success 200 {object} map[string]interface{}
// @Router /api/collections [post]
func (ctrl *CatalogController) CreateCollection(c *gin.Context) {
	in, err := collectionInput(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ctrl.catalogService.CreateCollection(c.Request.Context(), actor(c), in); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Collection created successfully", nil)
}

// UpdateCollection 编辑合集
// @Summary 编辑合集
// @Tags Catalog
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path string true "合集ID"
// @Param name formData string true "名称"
// @Param description formData string true "描述"
// @Param heroImage formData file false "新主图"
// @Success 200 {object} map[string]interface{}
// @Router /api/collections/{id} [patch]
func (ctrl *CatalogController) UpdateCollection(c *gin.Context) {
	in, err := collectionInput(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ctrl.catalogService.UpdateCollection(c.Request.Context(), actor(c), c.Param("id"), in); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Collection updated successfully", nil)
}

// DeleteCollection 删除合集
// @Summary 删除合集
// @Tags Catalog
// @Security BearerAuth
// @Param id path string true "合集ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/collections/{id} [delete]
func (ctrl *CatalogController) DeleteCollection(c *gin.Context) {
	if err := ctrl.catalogService.DeleteCollection(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Collection deleted successfully", nil)
}

func collectionInput(c *gin.Context) (service.CollectionInput, error) {
	var form dto.CollectionForm
	if err := c.ShouldBind(&form); err != nil {
		return service.CollectionInput{}, err
	}
	price, err := parseAmount("price", form.Price)
	if err != nil {
		return service.CollectionInput{}, err
	}
	plate, err := parseAmount("plateprice", form.PlatePrice)
	if err != nil {
		return service.CollectionInput{}, err
	}
	hero, err := formFile(c, "heroImage")
	if err != nil {
		return service.CollectionInput{}, err
	}
	return service.CollectionInput{
		Name:        form.Name,
		Description: form.Description,
		Type:        form.Type,
		Price:       price,
		PlatePrice:  plate,
		Features:    form.Features,
		HeroImage:   hero,
	}, nil
}

// ==================== 分组 ====================

// ListGroups 分组列表
// @Summary 分组列表
// @Tags Catalog
// @Security BearerAuth
// @Success 200 {array} model.Group
// @Router /api/groups [get]
func (ctrl *CatalogController) ListGroups(c *gin.Context) {
	list, err := ctrl.catalogService.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// CreateGroup 创建分组
// @Summary 创建分组
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Param body body dto.CreateGroupRequest true "分组名称"
// @Success 200 {object} map[string]interface{}
// @Router /api/groups [post]
func (ctrl *CatalogController) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	if err := ctrl.catalogService.CreateGroup(c.Request.Context(), actor(c), req.Name); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Group created successfully", nil)
}

// AddCollectionToGroup 合集加入分组
// @Summary 合集加入分组
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Param id path string true "分组ID"
// @Param body body dto.AddCollectionRequest true "合集ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/groups/{id}/collections [post]
func (ctrl *CatalogController) AddCollectionToGroup(c *gin.Context) {
	var req dto.AddCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	if err := ctrl.catalogService.AddCollectionToGroup(c.Request.Context(), actor(c), c.Param("id"), req.CollectionID); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Collection added to group", nil)
}

// DeleteGroup 删除分组
// @Summary 删除分组
// @Tags Catalog
// @Security BearerAuth
// @Param id path string true "分组ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/groups/{id} [delete]
func (ctrl *CatalogController) DeleteGroup(c *gin.Context) {
	if err := ctrl.catalogService.DeleteGroup(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Group deleted successfully", nil)
}
