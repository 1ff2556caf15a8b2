package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/validation"
)

// ProductSelection 添加商品时的选择项
type ProductSelection struct {
	Type         string
	GroupID      string
	CollectionID string
	Level        int // 0 表示自动选择第一个空等级
}

// ProductService 商品增删改
type ProductService struct {
	repo  repository.CatalogRepository
	audit *AuditService
}

func NewProductService(repo repository.CatalogRepository, audit *AuditService) *ProductService {
	return &ProductService{repo: repo, audit: audit}
}

// PrepareForm 拉取选项并按选择推进表单状态
// 选择不合法时返回 ValidationError，表单保持在出错前的状态
func (s *ProductService) PrepareForm(ctx context.Context, sel ProductSelection) (*AddProductForm, error) {
	form := NewAddProductForm()
	if sel.Type != "" {
		if err := form.SetProductType(sel.Type); err != nil {
			return form, err
		}
	}

	var (
		collections []model.Collection
		groups      []model.Group
		products    []model.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		collections, err = s.repo.ListCollections(gctx)
		return err
	})
	if form.isGaming() {
		g.Go(func() (err error) {
			groups, err = s.repo.ListGroups(gctx)
			return err
		})
		if sel.CollectionID != "" {
			g.Go(func() (err error) {
				products, err = s.repo.ListProducts(gctx)
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return form, err
	}
	form.LoadOptions(collections, groups)

	if form.isGaming() && sel.GroupID != "" {
		if err := form.SelectGroup(sel.GroupID); err != nil {
			return form, err
		}
	}
	if sel.CollectionID != "" {
		if err := form.SelectCollection(sel.CollectionID, products); err != nil {
			return form, err
		}
	}
	if form.isGaming() && sel.Level != 0 {
		if err := form.SetLevel(sel.Level); err != nil {
			return form, err
		}
	}
	return form, nil
}

// Create 校验后提交，返回后端提示信息
func (s *ProductService) Create(ctx context.Context, who Actor, sel ProductSelection, fields ProductFields) (string, error) {
	form, err := s.PrepareForm(ctx, sel)
	if err != nil {
		return "", err
	}
	form.Fields = fields
	return s.Submit(ctx, who, form)
}

// Submit 提交已准备好的表单；成功后表单复位，失败保留输入
func (s *ProductService) Submit(ctx context.Context, who Actor, form *AddProductForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}

	fields := form.FormFields()
	msg, err := s.repo.CreateProduct(ctx, who.Token, fields, form.Fields.Image)
	s.audit.Record(ctx, who, model.AuditActionCreate, "product", "", fields, err)
	if err != nil {
		return "", err
	}

	form.Reset()
	return msg, nil
}

// Update 列表页编辑，level 不可改
func (s *ProductService) Update(ctx context.Context, who Actor, id string, patch model.ProductPatch) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Product id is required")
	}
	patch.Name = strings.TrimSpace(patch.Name)
	if patch.Name == "" {
		return invalid("name", "Please enter product name")
	}
	if patch.Price.IsNegative() {
		return invalid("price", "Please enter a valid price")
	}
	patch.Description = validation.SanitizeInput(patch.Description)

	err := s.repo.UpdateProduct(ctx, id, patch)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "product", id, patch, err)
	return err
}

func (s *ProductService) Delete(ctx context.Context, who Actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Product id is required")
	}
	err := s.repo.DeleteProduct(ctx, who.Token, id)
	s.audit.Record(ctx, who, model.AuditActionDelete, "product", id, nil, err)
	return err
}
