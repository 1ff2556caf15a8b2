package repository

import (
	"context"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// PhoneBrandRepository 品牌型号接口，后端不校验鉴权头
type PhoneBrandRepository interface {
	List(ctx context.Context) ([]model.PhoneBrand, error)
	Create(ctx context.Context, brandName string, models []model.PhoneModel) error
	Update(ctx context.Context, id, brandName string, models []model.PhoneModel) error
	Delete(ctx context.Context, id string) error
	AddModel(ctx context.Context, id, modelName string) error
	RemoveModel(ctx context.Context, id, modelName string) error
	ToggleStatus(ctx context.Context, id string) (string, error)
}

type phoneBrandRepo struct {
	d net.Dispatcher
}

func NewPhoneBrandRepository(d net.Dispatcher) PhoneBrandRepository {
	return &phoneBrandRepo{d: d}
}

type brandBody struct {
	BrandName string             `json:"brandName"`
	Models    []model.PhoneModel `json:"models"`
}

func (r *phoneBrandRepo) List(ctx context.Context) ([]model.PhoneBrand, error) {
	env, err := r.d.Send(ctx, net.Get("/api/phone-brands"))
	if err != nil {
		return nil, err
	}
	brands := []model.PhoneBrand{}
	err = env.DecodeList(&brands, "data", "items")
	return brands, err
}

func (r *phoneBrandRepo) Create(ctx context.Context, brandName string, models []model.PhoneModel) error {
	if models == nil {
		models = []model.PhoneModel{}
	}
	_, err := r.d.Send(ctx, net.Post("/api/phone-brands").WithJSON(brandBody{BrandName: brandName, Models: models}))
	return err
}

func (r *phoneBrandRepo) Update(ctx context.Context, id, brandName string, models []model.PhoneModel) error {
	if models == nil {
		models = []model.PhoneModel{}
	}
	_, err := r.d.Send(ctx, net.Put("/api/phone-brands/"+seg(id)).WithJSON(brandBody{BrandName: brandName, Models: models}))
	return err
}

func (r *phoneBrandRepo) Delete(ctx context.Context, id string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/phone-brands/"+seg(id)))
	return err
}

func (r *phoneBrandRepo) AddModel(ctx context.Context, id, modelName string) error {
	_, err := r.d.Send(ctx, net.Post("/api/phone-brands/"+seg(id)+"/models").
		WithJSON(model.PhoneModel{ModelName: modelName}))
	return err
}

// RemoveModel 型号名作为路径段，需转义 (如 "Galaxy S24/Ultra")
func (r *phoneBrandRepo) RemoveModel(ctx context.Context, id, modelName string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/phone-brands/"+seg(id)+"/models/"+seg(modelName)))
	return err
}

func (r *phoneBrandRepo) ToggleStatus(ctx context.Context, id string) (string, error) {
	env, err := r.d.Send(ctx, net.Patch("/api/phone-brands/"+seg(id)+"/toggle-status"))
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
