package repository

import (
	"context"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// DesignAssetFilter 查询条件，空值不过滤
type DesignAssetFilter struct {
	Category string
	IsActive *bool
}

// DesignAssetRepository 设计素材接口
type DesignAssetRepository interface {
	List(ctx context.Context, filter DesignAssetFilter) ([]model.DesignAsset, error)
	Create(ctx context.Context, token string, category string, isActive bool, image *model.Upload) error
	Update(ctx context.Context, token, id string, category string, isActive bool, image *model.Upload) error
	Delete(ctx context.Context, token, id string) error
}

type designAssetRepo struct {
	d net.Dispatcher
}

func NewDesignAssetRepository(d net.Dispatcher) DesignAssetRepository {
	return &designAssetRepo{d: d}
}

func (r *designAssetRepo) List(ctx context.Context, filter DesignAssetFilter) ([]model.DesignAsset, error) {
	req := net.Get("/api/design-assets").WithQuery("category", filter.Category)
	if filter.IsActive != nil {
		req.WithQuery("isActive", boolField(*filter.IsActive))
	}

	env, err := r.d.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	assets := []model.DesignAsset{}
	err = env.DecodeList(&assets, "items", "data")
	return assets, err
}

func (r *designAssetRepo) Create(ctx context.Context, token string, category string, isActive bool, image *model.Upload) error {
	req := net.Post("/api/design-assets").
		WithAuth(net.AuthTokenHeader, token).
		WithForm(map[string]string{"category": category, "isActive": boolField(isActive)}).
		WithFile(uploadFile("image", image))
	_, err := r.d.Send(ctx, req)
	return err
}

func (r *designAssetRepo) Update(ctx context.Context, token, id string, category string, isActive bool, image *model.Upload) error {
	req := net.Patch("/api/design-assets/"+seg(id)).
		WithAuth(net.AuthTokenHeader, token).
		WithForm(map[string]string{"category": category, "isActive": boolField(isActive)}).
		WithFile(uploadFile("image", image))
	_, err := r.d.Send(ctx, req)
	return err
}

func (r *designAssetRepo) Delete(ctx context.Context, token, id string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/design-assets/"+seg(id)).WithAuth(net.AuthTokenHeader, token))
	return err
}
