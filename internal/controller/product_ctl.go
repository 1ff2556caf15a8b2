package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// ProductController 商品
type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// FormOptions 添加商品表单的可选项
// @Summary 添加商品表单级联选项
// @Description 游戏商品：分组 -> 合集 -> 等级；普通商品：合集可选
// @Tags Product
// @Security BearerAuth
// @Param type query string false "gaming / standard"
// @Param groupId query string false "分组ID"
// @Param collectionId query string false "合集ID"
// @Param level query int false "等级 1-5"
// @Success 200 {object} dto.ProductFormResp
// @Failure 400 {object} map[string]interface{} "选择不合法"
// @Router /api/products/form [get]
func (ctrl *ProductController) FormOptions(c *gin.Context) {
	var q dto.ProductFormQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	form, err := ctrl.productService.PrepareForm(c.Request.Context(), selection(q))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, newProductFormResp(form))
}

func newProductFormResp(f *service.AddProductForm) dto.ProductFormResp {
	return dto.ProductFormResp{
		ProductType:        f.ProductType(),
		Groups:             f.Groups(),
		Collections:        f.AvailableCollections(),
		SelectedGroup:      f.SelectedGroup(),
		SelectedCollection: f.SelectedCollection(),
		Level:              f.Level(),
		UsedLevels:         f.UsedLevels(),
		AvailableLevels:    f.AvailableLevels(),
		Full:               f.Full(),
	}
}

func selection(q dto.ProductFormQuery) service.ProductSelection {
	return service.ProductSelection{
		Type:         q.Type,
		GroupID:      q.GroupID,
		CollectionID: q.CollectionID,
		Level:        q.Level,
	}
}

// Create 添加商品
// @Summary 添加商品
// @Tags Product
// @Security BearerAuth
// @Accept multipart/form-data
// @Param type formData string true "gaming / standard"
// @Param collectionId formData string false "合集ID (游戏商品必填)"
// @Param level formData int false "等级 (游戏商品)"
// @Param name formData string true "名称"
// @Param description formData string true "描述"
// @Param price formData string false "价格 (普通商品必填)"
// @Param image1 formData file true "商品图"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "校验失败"
// @Router /api/products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var form dto.CreateProductForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	image, err := formFile(c, "image1")
	if err != nil {
		respondError(c, err)
		return
	}

	msg, err := ctrl.productService.Create(c.Request.Context(), actor(c), selection(form.ProductFormQuery), service.ProductFields{
		Name:           form.Name,
		Description:    form.Description,
		Price:          form.Price,
		Category:       form.Category,
		Material:       form.Material,
		Finish:         form.Finish,
		DesignType:     form.DesignType,
		PrimaryColor:   form.PrimaryColor,
		SecondaryColor: form.SecondaryColor,
		HexCode:        form.HexCode,
		Pattern:        form.Pattern,
		Customizable:   form.Customizable,
		Features:       form.Features,
		Image:          image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, msg, nil)
}

// Update 编辑商品
// @Summary 编辑商品 (名称、价格、分类、描述)
// @Tags Product
// @Security BearerAuth
// @Accept json
// @Param id path string true "商品ID"
// @Param body body dto.UpdateProductRequest true "商品信息"
// @Success 200 {object} map[string]interface{}
// @Router /api/products/{id} [patch]
func (ctrl *ProductController) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	err := ctrl.productService.Update(c.Request.Context(), actor(c), c.Param("id"), model.ProductPatch{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Product updated successfully", nil)
}

// Delete 删除商品
// @Summary 删除商品
// @Tags Product
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	if err := ctrl.productService.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Product deleted successfully", nil)
}
