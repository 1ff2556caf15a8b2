package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/validation"
)

// CatalogView 列表页数据
type CatalogView struct {
	GamingCollections []model.Collection `json:"gamingCollections"`
	NormalCollections []model.Collection `json:"normalCollections"`
	OrphanedProducts  []model.Product    `json:"orphanedProducts"`
	TotalProducts     int                `json:"totalProducts"`
}

// CollectionInput 创建/编辑合集
type CollectionInput struct {
	Name        string
	Description string
	Type        string          // 可选 gaming | normal
	Price       decimal.Decimal // 游戏合集整体价格，可选
	PlatePrice  decimal.Decimal
	Features    string // 逗号分隔，可选
	HeroImage   *model.Upload
}

// CatalogService 合集、分组与商品列表
type CatalogService struct {
	repo  repository.CatalogRepository
	audit *AuditService
}

func NewCatalogService(repo repository.CatalogRepository, audit *AuditService) *CatalogService {
	return &CatalogService{repo: repo, audit: audit}
}

// ==================== 列表 ====================

// Overview 并发拉取合集与商品，两者都返回后再计算分类与游离商品
func (s *CatalogService) Overview(ctx context.Context) (*CatalogView, error) {
	var (
		collections []model.Collection
		products    []model.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		collections, err = s.repo.ListCollections(gctx)
		if err != nil {
			return fmt.Errorf("加载合集失败: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = s.repo.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("加载商品失败: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	gaming, normal := PartitionCollections(collections)
	return &CatalogView{
		GamingCollections: gaming,
		NormalCollections: normal,
		OrphanedProducts:  OrphanedProducts(collections, products),
		TotalProducts:     len(products),
	}, nil
}

// PartitionCollections 按 type 分为游戏合集与普通合集，其他类型丢弃
func PartitionCollections(collections []model.Collection) (gaming, normal []model.Collection) {
	gaming = []model.Collection{}
	normal = []model.Collection{}
	for _, c := range collections {
		switch c.Type {
		case model.CollectionTypeGaming:
			gaming = append(gaming, c)
		case model.CollectionTypeNormal:
			normal = append(normal, c)
		}
	}
	return gaming, normal
}

// OrphanedProducts 不被任何合集引用的商品
func OrphanedProducts(collections []model.Collection, products []model.Product) []model.Product {
	seen := make(map[string]struct{})
	for _, c := range collections {
		for _, ref := range c.Products {
			seen[ref.ID] = struct{}{}
		}
	}

	out := []model.Product{}
	for _, p := range products {
		if _, ok := seen[p.Key()]; !ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogService) ListGroups(ctx context.Context) ([]model.Group, error) {
	return s.repo.ListGroups(ctx)
}

func (s *CatalogService) ListCollections(ctx context.Context) ([]model.Collection, error) {
	return s.repo.ListCollections(ctx)
}

// ==================== 合集 ====================

func (s *CatalogService) CreateCollection(ctx context.Context, who Actor, in CollectionInput) error {
	fields, err := collectionFields(in)
	if err != nil {
		return err
	}
	if err := checkOptionalImage("heroImage", in.HeroImage, validation.MaxImageSize); err != nil {
		return err
	}

	err = s.repo.CreateCollection(ctx, fields, in.HeroImage)
	s.audit.Record(ctx, who, model.AuditActionCreate, "collection", "", fields, err)
	return err
}

// UpdateCollection 全字段覆盖，新图片可选
func (s *CatalogService) UpdateCollection(ctx context.Context, who Actor, id string, in CollectionInput) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Collection id is required")
	}
	fields, err := collectionFields(in)
	if err != nil {
		return err
	}
	if err := checkOptionalImage("heroImage", in.HeroImage, validation.MaxImageSize); err != nil {
		return err
	}

	err = s.repo.UpdateCollection(ctx, id, fields, in.HeroImage)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "collection", id, fields, err)
	return err
}

func (s *CatalogService) DeleteCollection(ctx context.Context, who Actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Collection id is required")
	}
	err := s.repo.DeleteCollection(ctx, who.Token, id)
	s.audit.Record(ctx, who, model.AuditActionDelete, "collection", id, nil, err)
	return err
}

func collectionFields(in CollectionInput) (map[string]string, error) {
	name := strings.TrimSpace(in.Name)
	desc := strings.TrimSpace(in.Description)
	if name == "" {
		return nil, invalid("name", "Please enter a collection name")
	}
	if desc == "" {
		return nil, invalid("description", "Please enter a description")
	}

	fields := map[string]string{
		"name":        validation.SanitizeInput(name),
		"description": validation.SanitizeInput(desc),
	}
	switch in.Type {
	case "":
	case model.CollectionTypeGaming, model.CollectionTypeNormal:
		fields["type"] = in.Type
	default:
		return nil, invalid("type", "Collection type must be gaming or normal")
	}
	if in.Price.IsNegative() || in.PlatePrice.IsNegative() {
		return nil, invalid("price", "Price cannot be negative")
	}
	if in.Price.IsPositive() {
		fields["price"] = in.Price.String()
	}
	if in.PlatePrice.IsPositive() {
		fields["plateprice"] = in.PlatePrice.String()
	}
	if f := strings.TrimSpace(in.Features); f != "" {
		fields["Features"] = validation.SanitizeInput(f)
	}
	return fields, nil
}

// ==================== 分组 ====================

func (s *CatalogService) CreateGroup(ctx context.Context, who Actor, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("name", "Please enter a group name")
	}
	err := s.repo.CreateGroup(ctx, validation.SanitizeInput(name))
	s.audit.Record(ctx, who, model.AuditActionCreate, "group", "", map[string]string{"name": name}, err)
	return err
}

func (s *CatalogService) AddCollectionToGroup(ctx context.Context, who Actor, groupID, collectionID string) error {
	if strings.TrimSpace(groupID) == "" {
		return invalid("groupId", "Group id is required")
	}
	if strings.TrimSpace(collectionID) == "" {
		return invalid("collectionId", "Please select a collection")
	}
	err := s.repo.AddCollectionToGroup(ctx, groupID, collectionID)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "group", groupID, map[string]string{"collectionId": collectionID}, err)
	return err
}

func (s *CatalogService) DeleteGroup(ctx context.Context, who Actor, groupID string) error {
	if strings.TrimSpace(groupID) == "" {
		return invalid("groupId", "Group id is required")
	}
	err := s.repo.DeleteGroup(ctx, groupID)
	s.audit.Record(ctx, who, model.AuditActionDelete, "group", groupID, nil, err)
	return err
}
