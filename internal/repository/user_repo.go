package repository

import (
	"context"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// UserRepository 用户报表，使用 Bearer
type UserRepository interface {
	ListAll(ctx context.Context, token string) ([]model.User, error)
}

type userRepo struct {
	d net.Dispatcher
}

func NewUserRepository(d net.Dispatcher) UserRepository {
	return &userRepo{d: d}
}

func (r *userRepo) ListAll(ctx context.Context, token string) ([]model.User, error) {
	env, err := r.d.Send(ctx, net.Get("/api/users/all").WithAuth(net.AuthBearer, token))
	if err != nil {
		return nil, err
	}
	users := []model.User{}
	err = env.DecodeList(&users, "data", "users", "items")
	return users, err
}
