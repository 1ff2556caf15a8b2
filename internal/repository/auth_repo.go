package repository

import (
	"context"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// AuthRepository 后端管理员登录
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authRepo struct {
	d net.Dispatcher
}

func NewAuthRepository(d net.Dispatcher) AuthRepository {
	return &authRepo{d: d}
}

// Login 返回后端签发的 token
func (r *authRepo) Login(ctx context.Context, email, password string) (string, error) {
	env, err := r.d.Send(ctx, net.Post("/api/auth/admin").WithJSON(map[string]string{
		"email":    email,
		"password": password,
	}))
	if err != nil {
		return "", err
	}

	token := env.String("token")
	if token == "" {
		return "", &net.APIError{StatusCode: env.StatusCode, Message: "login response carried no token"}
	}
	return token, nil
}
