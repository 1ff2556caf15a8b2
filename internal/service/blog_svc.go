package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/validation"
)

// BlogInput 博客表单
type BlogInput struct {
	Title    string
	Excerpt  string
	Author   string
	Status   string
	Category string
	Tags     string // 逗号分隔
	Cover    *model.Upload
	Blocks   model.ContentBlocks
}

// BlogService 博客管理
type BlogService struct {
	repo  repository.BlogRepository
	audit *AuditService
}

func NewBlogService(repo repository.BlogRepository, audit *AuditService) *BlogService {
	return &BlogService{repo: repo, audit: audit}
}

func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	return s.repo.List(ctx)
}

// Save id 为空时创建 (必须有封面)
// 返回替换为上传地址后的正文块
func (s *BlogService) Save(ctx context.Context, who Actor, id string, in BlogInput) ([]model.WireBlock, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	if in.Title == "" || in.Excerpt == "" {
		return nil, invalid("title", "Please fill in title and excerpt")
	}
	if id == "" && (in.Cover == nil || len(in.Cover.Data) == 0) {
		return nil, invalid("image", "Please select a cover image")
	}
	if err := checkOptionalImage("image", in.Cover, validation.MaxImageSize); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.BlogStatusDraft
	}
	if status != model.BlogStatusDraft && status != model.BlogStatusPublished {
		return nil, invalid("status", "Status must be draft or published")
	}

	editor := NewContentEditor(in.Blocks)
	wire, uploads := editor.Serialize()
	for i, u := range uploads {
		if err := checkImage(fmt.Sprintf("contentImages[%d]", i), u, validation.MaxImageSize); err != nil {
			return nil, err
		}
	}

	blocksJSON, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("序列化正文失败: %w", err)
	}

	fields := map[string]string{
		"title":         validation.SanitizeInput(in.Title),
		"excerpt":       validation.SanitizeInput(in.Excerpt),
		"author":        strings.TrimSpace(in.Author),
		"status":        status,
		"category":      strings.TrimSpace(in.Category),
		"tags":          strings.Join(model.ParseTags(in.Tags), ","),
		"contentBlocks": string(blocksJSON),
	}

	urls, err := s.repo.Save(ctx, who.Token, id, fields, in.Cover, uploads)
	action := model.AuditActionCreate
	if id != "" {
		action = model.AuditActionUpdate
	}
	s.audit.Record(ctx, who, action, "blog", id, map[string]any{"title": in.Title, "blocks": len(wire), "images": len(uploads)}, err)
	if err != nil {
		return nil, err
	}

	if len(urls) == 0 {
		return wire, nil
	}
	return ApplyUploadedURLs(wire, urls)
}

func (s *BlogService) Delete(ctx context.Context, who Actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Blog id is required")
	}
	err := s.repo.Delete(ctx, who.Token, id)
	s.audit.Record(ctx, who, model.AuditActionDelete, "blog", id, nil, err)
	return err
}
