package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
)

// UserReport 用户报表汇总
type UserReport struct {
	Users       []model.User    `json:"users"`
	Total       int             `json:"total"`
	Verified    int             `json:"verified"`
	TotalOrders int             `json:"totalOrders"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// UserService 只读用户报表
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Report 拉取全部用户后本地过滤
func (s *UserService) Report(ctx context.Context, who Actor, query string) (*UserReport, error) {
	users, err := s.repo.ListAll(ctx, who.Token)
	if err != nil {
		return nil, err
	}
	users = SearchUsers(users, query)

	report := &UserReport{Users: users, Total: len(users), Revenue: decimal.Zero}
	for _, u := range users {
		if u.EmailVerified {
			report.Verified++
		}
		report.TotalOrders += u.OrdersCount
		report.Revenue = report.Revenue.Add(u.TotalSpent)
	}
	return report, nil
}

// SearchUsers 用户名与邮箱忽略大小写，手机号按原样子串匹配
func SearchUsers(users []model.User, query string) []model.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(u.PhoneNumber, query) {
			out = append(out, u)
		}
	}
	return out
}
