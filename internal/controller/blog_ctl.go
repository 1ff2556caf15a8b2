package controller

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// BlogController 博客
type BlogController struct {
	blogService *service.BlogService
}

func NewBlogController(blogService *service.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// List 博客列表
// @Summary 博客列表
// @Tags Blog
// @Security BearerAuth
// @Success 200 {array} model.Blog
// @Router /api/blogs [get]
func (ctrl *BlogController) List(c *gin.Context) {
	list, err := ctrl.blogService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// Create 创建博客
// @Summary 创建博客
// @Description contentBlocks 为 JSON 数组；图片块通过 imageIndex 引用 contentImages 中的文件
// @Tags Blog
// @Security BearerAuth
// @Accept multipart/form-data
// @Param title formData string true "标题"
// @Param excerpt formData string true "摘要"
// @Param status formData string false "draft / published"
// @Param tags formData string false "标签，逗号分隔"
// @Param contentBlocks formData string false "正文块 JSON"
// @Param image formData file true "封面"
// @Param contentImages formData file false "正文图片"
// @Success 200 {array} model.WireBlock
// @Router /api/blogs [post]
func (ctrl *BlogController) Create(c *gin.Context) {
	ctrl.save(c, "")
}

// Update 编辑博客
// @Summary 编辑博客 (封面可选)
// @Tags Blog
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path string true "博客ID"
// @Success 200 {array} model.WireBlock
// @Router /api/blogs/{id} [put]
func (ctrl *BlogController) Update(c *gin.Context) {
	ctrl.save(c, c.Param("id"))
}

func (ctrl *BlogController) save(c *gin.Context, id string) {
	var form dto.BlogForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}
	cover, err := formFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	images, err := formFiles(c, "contentImages")
	if err != nil {
		respondError(c, err)
		return
	}
	blocks, err := parseContentBlocks(form.ContentBlocks, images)
	if err != nil {
		respondError(c, err)
		return
	}

	wire, err := ctrl.blogService.Save(c.Request.Context(), actor(c), id, service.BlogInput{
		Title:    form.Title,
		Excerpt:  form.Excerpt,
		Author:   form.Author,
		Status:   form.Status,
		Category: form.Category,
		Tags:     form.Tags,
		Cover:    cover,
		Blocks:   blocks,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	msg := "Blog created successfully"
	if id != "" {
		msg = "Blog updated successfully"
	}
	respondMsg(c, msg, wire)
}

// Delete 删除博客
// @Summary 删除博客
// @Tags Blog
// @Security BearerAuth
// @Param id path string true "博客ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/blogs/{id} [delete]
func (ctrl *BlogController) Delete(c *gin.Context) {
	if err := ctrl.blogService.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Blog deleted successfully", nil)
}

// parseContentBlocks 解析正文块，图片块按 imageIndex 关联上传文件
func parseContentBlocks(raw string, images []*model.Upload) (model.ContentBlocks, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var wire []model.WireBlock
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, &service.ValidationError{Field: "contentBlocks", Message: "contentBlocks must be a JSON array"}
	}

	blocks := make(model.ContentBlocks, 0, len(wire))
	for i, w := range wire {
		b, err := model.FromWire(w)
		if err != nil {
			return nil, &service.ValidationError{Field: "contentBlocks", Message: fmt.Sprintf("block %d: %v", i, err)}
		}
		if img, ok := b.(*model.ImageBlock); ok && w.ImageIndex != nil {
			idx := *w.ImageIndex
			if idx < 0 || idx >= len(images) {
				return nil, &service.ValidationError{Field: "contentImages", Message: fmt.Sprintf("block %d references missing image %d", i, idx)}
			}
			img.File = images[idx]
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
