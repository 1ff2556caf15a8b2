package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/validation"
)

// ErrFeaturedLimit 主推商品已达上限
var ErrFeaturedLimit = &ValidationError{
	Field:   "featured",
	Message: "Maximum 2 featured products allowed. Please delete an existing product first.",
}

// HomeContentService 合集提示、站点设置、主推与推荐商品
type HomeContentService struct {
	repo  repository.HomeContentRepository
	audit *AuditService
}

func NewHomeContentService(repo repository.HomeContentRepository, audit *AuditService) *HomeContentService {
	return &HomeContentService{repo: repo, audit: audit}
}

// ==================== 合集提示 ====================

// Tooltips 按数量升序
func (s *HomeContentService) Tooltips(ctx context.Context) ([]model.CollectionTooltip, error) {
	return s.repo.ListTooltips(ctx)
}

// SaveTooltips 任一行标题或内容为空即拒绝，不发请求；合法时原样提交
func (s *HomeContentService) SaveTooltips(ctx context.Context, who Actor, tooltips []model.CollectionTooltip) error {
	if err := ValidateTooltips(tooltips); err != nil {
		return err
	}
	err := s.repo.SaveTooltips(ctx, who.Token, tooltips)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "collection_tooltips", "", tooltips, err)
	return err
}

// ValidateTooltips 批量保存前校验
func ValidateTooltips(tooltips []model.CollectionTooltip) error {
	if len(tooltips) == 0 {
		return invalid("tooltips", "No tooltips to save")
	}
	seen := map[int]bool{}
	for _, t := range tooltips {
		if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Message) == "" {
			return invalid("tooltips", "All tooltips must have a title and message")
		}
		if err := validateStruct(t); err != nil {
			return err
		}
		if seen[t.Quantity] {
			return invalid("quantity", "Duplicate tooltip for quantity %d", t.Quantity)
		}
		seen[t.Quantity] = true
	}
	return nil
}

// ==================== 站点设置 ====================

func (s *HomeContentService) Settings(ctx context.Context) (*model.SiteSettings, error) {
	return s.repo.GetSettings(ctx)
}

// SaveSettings 整体替换
func (s *HomeContentService) SaveSettings(ctx context.Context, who Actor, in model.SiteSettings) (*model.SiteSettings, error) {
	if err := validateSettings(in); err != nil {
		return nil, err
	}
	out, err := s.repo.SaveSettings(ctx, who.Token, in)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "site_settings", "", in, err)
	return out, err
}

// ResetSettings 恢复默认
func (s *HomeContentService) ResetSettings(ctx context.Context, who Actor) (*model.SiteSettings, error) {
	out, err := s.repo.ResetSettings(ctx, who.Token)
	s.audit.Record(ctx, who, model.AuditActionReset, "site_settings", "", nil, err)
	return out, err
}

func validateSettings(in model.SiteSettings) error {
	switch {
	case in.TextScrollVelocity < 0:
		return invalid("textScrollVelocity", "Scroll velocity cannot be negative")
	case in.GamingCollectionsLimit < 0 || in.NonGamingCollectionsLimit < 0:
		return invalid("collectionsLimit", "Collection limits cannot be negative")
	case in.ProductsPerRow < 1 || in.ProductsRows < 1:
		return invalid("productsPerRow", "Products per row and rows must be at least 1")
	}
	return nil
}

// ==================== 主推商品 ====================

func (s *HomeContentService) Featured(ctx context.Context) ([]model.FeaturedHomeProduct, error) {
	return s.repo.ListFeatured(ctx)
}

// CanAddFeatured 已有记录数达到上限时禁止打开新建表单 (不区分是否启用)
func CanAddFeatured(existing []model.FeaturedHomeProduct) bool {
	return len(existing) < model.MaxFeaturedProducts
}

// SaveFeatured id 为空时新建，新建前重新拉取列表检查上限
func (s *HomeContentService) SaveFeatured(ctx context.Context, who Actor, id string, p model.FeaturedHomeProduct, image *model.Upload) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return invalid("name", "Please enter product name")
	}

	if id == "" {
		existing, err := s.repo.ListFeatured(ctx)
		if err != nil {
			return err
		}
		if !CanAddFeatured(existing) {
			return ErrFeaturedLimit
		}
		if image == nil || len(image.Data) == 0 {
			return invalid("image", "Please upload an image")
		}
	}
	if err := checkOptionalImage("image", image, validation.MaxImageSize); err != nil {
		return err
	}

	err := s.repo.SaveFeatured(ctx, who.Token, id, p, image)
	s.audit.Record(ctx, who, saveAction(id), "featured_product", id, p, err)
	return err
}

func (s *HomeContentService) DeleteFeatured(ctx context.Context, who Actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Product id is required")
	}
	err := s.repo.DeleteFeatured(ctx, who.Token, id)
	s.audit.Record(ctx, who, model.AuditActionDelete, "featured_product", id, nil, err)
	return err
}

// ==================== 推荐商品 ====================

func (s *HomeContentService) Suggested(ctx context.Context) ([]model.SuggestedProduct, error) {
	return s.repo.ListSuggested(ctx)
}

// SaveSuggested 名称与价格必填
func (s *HomeContentService) SaveSuggested(ctx context.Context, who Actor, id string, p model.SuggestedProduct, image *model.Upload) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return invalid("name", "Please enter product name")
	}
	if !p.Price.GreaterThan(decimal.Zero) {
		return invalid("price", "Please enter a valid price")
	}
	p.Description = validation.SanitizeInput(p.Description)
	if err := checkOptionalImage("image", image, validation.MaxImageSize); err != nil {
		return err
	}

	err := s.repo.SaveSuggested(ctx, who.Token, id, p, image)
	s.audit.Record(ctx, who, saveAction(id), "suggested_product", id, p, err)
	return err
}

func (s *HomeContentService) DeleteSuggested(ctx context.Context, who Actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Product id is required")
	}
	err := s.repo.DeleteSuggested(ctx, who.Token, id)
	s.audit.Record(ctx, who, model.AuditActionDelete, "suggested_product", id, nil, err)
	return err
}

func saveAction(id string) string {
	if id == "" {
		return model.AuditActionCreate
	}
	return model.AuditActionUpdate
}
