package repository

import (
	"context"
	"fmt"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// OrderRepository 订单接口，全部使用 token 头
type OrderRepository interface {
	List(ctx context.Context, token string) ([]model.Order, error)
	Get(ctx context.Context, token, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, token, id, status string) error
	UpdateTracking(ctx context.Context, token string, info model.TrackingInfo) error
	UpdateReturnStatus(ctx context.Context, token, id, status, adminNote string) error
	Delete(ctx context.Context, token, id string) error
}

type orderRepo struct {
	d net.Dispatcher
}

func NewOrderRepository(d net.Dispatcher) OrderRepository {
	return &orderRepo{d: d}
}

func (r *orderRepo) List(ctx context.Context, token string) ([]model.Order, error) {
	env, err := r.d.Send(ctx, net.Post("/api/orders/list").
		WithAuth(net.AuthTokenHeader, token).
		WithJSON(map[string]any{}))
	if err != nil {
		return nil, err
	}
	orders := []model.Order{}
	err = env.DecodeList(&orders, "orders", "data", "items")
	return orders, err
}

func (r *orderRepo) Get(ctx context.Context, token, id string) (*model.Order, error) {
	env, err := r.d.Send(ctx, net.Get("/api/orders/"+seg(id)).WithAuth(net.AuthTokenHeader, token))
	if err != nil {
		return nil, err
	}

	var order model.Order
	found, err := env.DecodeObject(&order, "order", "data")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &net.APIError{StatusCode: env.StatusCode, Message: fmt.Sprintf("order %s not found", id)}
	}
	return &order, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, token, id, status string) error {
	_, err := r.d.Send(ctx, net.Post("/api/orders/status").
		WithAuth(net.AuthTokenHeader, token).
		WithJSON(map[string]string{"orderId": id, "status": status}))
	return err
}

func (r *orderRepo) UpdateTracking(ctx context.Context, token string, info model.TrackingInfo) error {
	_, err := r.d.Send(ctx, net.Post("/api/orders/tracking").
		WithAuth(net.AuthTokenHeader, token).
		WithJSON(info))
	return err
}

func (r *orderRepo) UpdateReturnStatus(ctx context.Context, token, id, status, adminNote string) error {
	_, err := r.d.Send(ctx, net.Post("/api/orders/return-status").
		WithAuth(net.AuthTokenHeader, token).
		WithJSON(map[string]string{"orderId": id, "status": status, "adminNote": adminNote}))
	return err
}

func (r *orderRepo) Delete(ctx context.Context, token, id string) error {
	_, err := r.d.Send(ctx, net.Post("/api/orders/delete").
		WithAuth(net.AuthTokenHeader, token).
		WithJSON(map[string]string{"orderId": id}))
	return err
}
