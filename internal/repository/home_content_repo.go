package repository

import (
	"context"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// ==================== 仓储接口 ====================

// HomeContentRepository 首页配置：提示文案、站点设置、主推/推荐商品
type HomeContentRepository interface {
	// 合集提示
	ListTooltips(ctx context.Context) ([]model.CollectionTooltip, error)
	SaveTooltips(ctx context.Context, token string, tooltips []model.CollectionTooltip) error

	// 站点设置
	GetSettings(ctx context.Context) (*model.SiteSettings, error)
	SaveSettings(ctx context.Context, token string, s model.SiteSettings) (*model.SiteSettings, error)
	ResetSettings(ctx context.Context, token string) (*model.SiteSettings, error)

	// 主推商品
	ListFeatured(ctx context.Context) ([]model.FeaturedHomeProduct, error)
	SaveFeatured(ctx context.Context, token, id string, p model.FeaturedHomeProduct, image *model.Upload) error
	DeleteFeatured(ctx context.Context, token, id string) error

	// 推荐商品
	ListSuggested(ctx context.Context) ([]model.SuggestedProduct, error)
	SaveSuggested(ctx context.Context, token, id string, p model.SuggestedProduct, image *model.Upload) error
	DeleteSuggested(ctx context.Context, token, id string) error
}

// ==================== 仓储实现 ====================

type homeContentRepo struct {
	d net.Dispatcher
}

func NewHomeContentRepository(d net.Dispatcher) HomeContentRepository {
	return &homeContentRepo{d: d}
}

func (r *homeContentRepo) ListTooltips(ctx context.Context) ([]model.CollectionTooltip, error) {
	env, err := r.d.Send(ctx, net.Get("/api/collection-tooltips"))
	if err != nil {
		return nil, err
	}

	// 数据在 data.tooltips
	var wrapped struct {
		Tooltips []model.CollectionTooltip `json:"tooltips"`
	}
	found, err := env.DecodeObject(&wrapped, "data")
	if err != nil {
		return nil, err
	}
	tooltips := wrapped.Tooltips
	if !found {
		tooltips = []model.CollectionTooltip{}
		if err := env.DecodeList(&tooltips, "tooltips", "data", "items"); err != nil {
			return nil, err
		}
	}
	if tooltips == nil {
		tooltips = []model.CollectionTooltip{}
	}
	model.SortTooltips(tooltips)
	return tooltips, nil
}

func (r *homeContentRepo) SaveTooltips(ctx context.Context, token string, tooltips []model.CollectionTooltip) error {
	_, err := r.d.Send(ctx, net.Put("/api/collection-tooltips").
		WithAuth(net.AuthTokenHeader, token).
		WithJSON(map[string]any{"tooltips": tooltips}))
	return err
}

func (r *homeContentRepo) GetSettings(ctx context.Context) (*model.SiteSettings, error) {
	env, err := r.d.Send(ctx, net.Get("/api/site-settings"))
	if err != nil {
		return nil, err
	}
	return decodeSettings(env)
}

func (r *homeContentRepo) SaveSettings(ctx context.Context, token string, s model.SiteSettings) (*model.SiteSettings, error) {
	env, err := r.d.Send(ctx, net.Put("/api/site-settings").WithAuth(net.AuthTokenHeader, token).WithJSON(s))
	if err != nil {
		return nil, err
	}
	return decodeSettings(env)
}

func (r *homeContentRepo) ResetSettings(ctx context.Context, token string) (*model.SiteSettings, error) {
	env, err := r.d.Send(ctx, net.Post("/api/site-settings/reset").
		WithAuth(net.AuthTokenHeader, token).
		WithJSON(map[string]any{}))
	if err != nil {
		return nil, err
	}
	return decodeSettings(env)
}

// decodeSettings 缺失字段保留默认值
func decodeSettings(env *net.Envelope) (*model.SiteSettings, error) {
	s := model.DefaultSiteSettings()
	if _, err := env.DecodeObject(&s, "data", "settings"); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *homeContentRepo) ListFeatured(ctx context.Context) ([]model.FeaturedHomeProduct, error) {
	env, err := r.d.Send(ctx, net.Get("/api/featured-home-products"))
	if err != nil {
		return nil, err
	}
	products := []model.FeaturedHomeProduct{}
	err = env.DecodeList(&products, "data", "items", "products")
	return products, err
}

func (r *homeContentRepo) SaveFeatured(ctx context.Context, token, id string, p model.FeaturedHomeProduct, image *model.Upload) error {
	req := net.Post("/api/featured-home-products")
	if id != "" {
		req = net.Put("/api/featured-home-products/" + seg(id))
	}
	req.WithAuth(net.AuthTokenHeader, token).
		WithForm(map[string]string{
			"name":         p.Name,
			"displayOrder": intField(p.DisplayOrder),
			"isActive":     boolField(p.IsActive),
		}).
		WithFile(uploadFile("image", image))
	_, err := r.d.Send(ctx, req)
	return err
}

func (r *homeContentRepo) DeleteFeatured(ctx context.Context, token, id string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/featured-home-products/"+seg(id)).WithAuth(net.AuthTokenHeader, token))
	return err
}

func (r *homeContentRepo) ListSuggested(ctx context.Context) ([]model.SuggestedProduct, error) {
	env, err := r.d.Send(ctx, net.Get("/api/suggested-products"))
	if err != nil {
		return nil, err
	}
	products := []model.SuggestedProduct{}
	err = env.DecodeList(&products, "data", "items", "products")
	return products, err
}

func (r *homeContentRepo) SaveSuggested(ctx context.Context, token, id string, p model.SuggestedProduct, image *model.Upload) error {
	req := net.Post("/api/suggested-products")
	if id != "" {
		req = net.Put("/api/suggested-products/" + seg(id))
	}
	req.WithAuth(net.AuthTokenHeader, token).
		WithForm(map[string]string{
			"name":         p.Name,
			"price":        p.Price.String(),
			"description":  p.Description,
			"displayOrder": intField(p.DisplayOrder),
			"isActive":     boolField(p.IsActive),
		}).
		WithFile(uploadFile("image", image))
	_, err := r.d.Send(ctx, req)
	return err
}

func (r *homeContentRepo) DeleteSuggested(ctx context.Context, token, id string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/suggested-products/"+seg(id)).WithAuth(net.AuthTokenHeader, token))
	return err
}
