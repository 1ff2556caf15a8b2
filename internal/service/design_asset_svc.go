package service

import (
	"context"
	"strings"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
)

// DesignAssetInput 素材表单
type DesignAssetInput struct {
	Category string
	IsActive bool
	Image    *model.Upload
}

// DesignAssetService 首页设计素材
type DesignAssetService struct {
	repo  repository.DesignAssetRepository
	audit *AuditService
}

func NewDesignAssetService(repo repository.DesignAssetRepository, audit *AuditService) *DesignAssetService {
	return &DesignAssetService{repo: repo, audit: audit}
}

// List category 为空或 all 时不过滤
func (s *DesignAssetService) List(ctx context.Context, category string, isActive *bool) ([]model.DesignAsset, error) {
	category = strings.ToUpper(strings.TrimSpace(category))
	if category == "ALL" {
		category = ""
	}
	if category != "" && !model.IsAssetCategory(category) {
		return nil, invalid("category", "Unknown category %q", category)
	}
	return s.repo.List(ctx, repository.DesignAssetFilter{Category: category, IsActive: isActive})
}

// Gallery 首页轮播/卡片使用的启用素材
func (s *DesignAssetService) Gallery(ctx context.Context, category string) ([]model.DesignAsset, error) {
	active := true
	return s.List(ctx, category, &active)
}

func (s *DesignAssetService) Create(ctx context.Context, who Actor, in DesignAssetInput) error {
	if in.Image == nil || len(in.Image.Data) == 0 {
		return invalid("image", "Please select an image")
	}
	if err := s.check(&in); err != nil {
		return err
	}
	err := s.repo.Create(ctx, who.Token, in.Category, in.IsActive, in.Image)
	s.audit.Record(ctx, who, model.AuditActionCreate, "design_asset", "", map[string]any{"category": in.Category, "isActive": in.IsActive}, err)
	return err
}

// Update 图片可选
func (s *DesignAssetService) Update(ctx context.Context, who Actor, id string, in DesignAssetInput) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Asset id is required")
	}
	if err := s.check(&in); err != nil {
		return err
	}
	err := s.repo.Update(ctx, who.Token, id, in.Category, in.IsActive, in.Image)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "design_asset", id, map[string]any{"category": in.Category, "isActive": in.IsActive}, err)
	return err
}

func (s *DesignAssetService) Delete(ctx context.Context, who Actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Asset id is required")
	}
	err := s.repo.Delete(ctx, who.Token, id)
	s.audit.Record(ctx, who, model.AuditActionDelete, "design_asset", id, nil, err)
	return err
}

func (s *DesignAssetService) check(in *DesignAssetInput) error {
	in.Category = strings.ToUpper(strings.TrimSpace(in.Category))
	if in.Category == "" {
		in.Category = model.AssetCategoryHero
	}
	if !model.IsAssetCategory(in.Category) {
		return invalid("category", "Category must be one of HERO, CIRCULAR, CARD")
	}
	return checkOptionalImage("image", in.Image, MaxDesignAssetSize)
}
