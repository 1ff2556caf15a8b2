package repository

import (
	"context"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// CouponRepository 优惠券接口，全部使用 token 头
type CouponRepository interface {
	List(ctx context.Context, token string) ([]model.Coupon, error)
	Create(ctx context.Context, token string, c model.Coupon) error
	Update(ctx context.Context, token, id string, c model.Coupon) error
	Delete(ctx context.Context, token, id string) error
}

type couponRepo struct {
	d net.Dispatcher
}

func NewCouponRepository(d net.Dispatcher) CouponRepository {
	return &couponRepo{d: d}
}

func (r *couponRepo) List(ctx context.Context, token string) ([]model.Coupon, error) {
	env, err := r.d.Send(ctx, net.Get("/api/coupon/list").WithAuth(net.AuthTokenHeader, token))
	if err != nil {
		return nil, err
	}
	coupons := []model.Coupon{}
	err = env.DecodeList(&coupons, "coupons", "data", "items")
	return coupons, err
}

func (r *couponRepo) Create(ctx context.Context, token string, c model.Coupon) error {
	_, err := r.d.Send(ctx, net.Post("/api/coupon/add").WithAuth(net.AuthTokenHeader, token).WithJSON(c))
	return err
}

func (r *couponRepo) Update(ctx context.Context, token, id string, c model.Coupon) error {
	_, err := r.d.Send(ctx, net.Put("/api/coupon/update/"+seg(id)).WithAuth(net.AuthTokenHeader, token).WithJSON(c))
	return err
}

func (r *couponRepo) Delete(ctx context.Context, token, id string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/coupon/remove/"+seg(id)).WithAuth(net.AuthTokenHeader, token))
	return err
}
