package repository

import (
	"context"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// ==================== 仓储接口 ====================

// CatalogRepository 商品、合集、分组
type CatalogRepository interface {
	// 商品
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, token string, fields map[string]string, image *model.Upload) (string, error)
	UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) error
	DeleteProduct(ctx context.Context, token, id string) error

	// 合集
	ListCollections(ctx context.Context) ([]model.Collection, error)
	CreateCollection(ctx context.Context, fields map[string]string, hero *model.Upload) error
	UpdateCollection(ctx context.Context, id string, fields map[string]string, hero *model.Upload) error
	DeleteCollection(ctx context.Context, token, id string) error

	// 分组
	ListGroups(ctx context.Context) ([]model.Group, error)
	CreateGroup(ctx context.Context, name string) error
	AddCollectionToGroup(ctx context.Context, groupID, collectionID string) error
	DeleteGroup(ctx context.Context, groupID string) error
}

// ==================== 仓储实现 ====================

type catalogRepo struct {
	d net.Dispatcher
}

func NewCatalogRepository(d net.Dispatcher) CatalogRepository {
	return &catalogRepo{d: d}
}

func (r *catalogRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	env, err := r.d.Send(ctx, net.Get("/api/products"))
	if err != nil {
		return nil, err
	}
	products := []model.Product{}
	err = env.DecodeList(&products, "items", "data", "products")
	return products, err
}

// CreateProduct 图片字段名固定为 image1，返回后端提示信息
func (r *catalogRepo) CreateProduct(ctx context.Context, token string, fields map[string]string, image *model.Upload) (string, error) {
	req := net.Post("/api/products").
		WithAuth(net.AuthTokenHeader, token).
		WithForm(fields).
		WithFile(uploadFile("image1", image))

	env, err := r.d.Send(ctx, req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (r *catalogRepo) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) error {
	_, err := r.d.Send(ctx, net.Patch("/api/products/"+seg(id)).WithJSON(patch))
	return err
}

func (r *catalogRepo) DeleteProduct(ctx context.Context, token, id string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/products/"+seg(id)).WithAuth(net.AuthTokenHeader, token))
	return err
}

func (r *catalogRepo) ListCollections(ctx context.Context) ([]model.Collection, error) {
	env, err := r.d.Send(ctx, net.Get("/api/collections"))
	if err != nil {
		return nil, err
	}
	collections := []model.Collection{}
	err = env.DecodeList(&collections, "items", "data", "collections")
	return collections, err
}

func (r *catalogRepo) CreateCollection(ctx context.Context, fields map[string]string, hero *model.Upload) error {
	req := net.Post("/api/collections").
		WithForm(fields).
		WithFile(uploadFile("heroImage", hero))
	_, err := r.d.Send(ctx, req)
	return err
}

func (r *catalogRepo) UpdateCollection(ctx context.Context, id string, fields map[string]string, hero *model.Upload) error {
	req := net.Patch("/api/collections/" + seg(id)).
		WithForm(fields).
		WithFile(uploadFile("heroImage", hero))
	_, err := r.d.Send(ctx, req)
	return err
}

func (r *catalogRepo) DeleteCollection(ctx context.Context, token, id string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/collections/"+seg(id)).WithAuth(net.AuthTokenHeader, token))
	return err
}

func (r *catalogRepo) ListGroups(ctx context.Context) ([]model.Group, error) {
	env, err := r.d.Send(ctx, net.Get("/api/groups"))
	if err != nil {
		return nil, err
	}
	groups := []model.Group{}
	err = env.DecodeList(&groups, "items", "data")
	return groups, err
}

func (r *catalogRepo) CreateGroup(ctx context.Context, name string) error {
	_, err := r.d.Send(ctx, net.Post("/api/groups").WithJSON(map[string]string{"name": name}))
	return err
}

func (r *catalogRepo) AddCollectionToGroup(ctx context.Context, groupID, collectionID string) error {
	req := net.Post("/api/groups/" + seg(groupID) + "/collections").
		WithJSON(map[string]string{"collectionId": collectionID})
	_, err := r.d.Send(ctx, req)
	return err
}

func (r *catalogRepo) DeleteGroup(ctx context.Context, groupID string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/groups/"+seg(groupID)))
	return err
}
