package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UserOrder 用户报表中的订单摘要
type UserOrder struct {
	ID          string          `json:"_id"`
	OrderID     string          `json:"orderId,omitempty"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []OrderItem     `json:"items,omitempty"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
}

// User 店铺用户 (只读报表)
type User struct {
	ID                     string          `json:"_id"`
	Username               string          `json:"username,omitempty"`
	Email                  string          `json:"email,omitempty"`
	PhoneNumber            string          `json:"phoneNumber,omitempty"`
	EmailVerified          bool            `json:"emailVerified"`
	Role                   string          `json:"role,omitempty"`
	Score                  int             `json:"score"`
	OrdersCount            int             `json:"ordersCount"`
	TotalSpent             decimal.Decimal `json:"totalSpent"`
	GamingCollectionsCount int             `json:"gamingCollectionsCount"`
	StandardProductsCount  int             `json:"standardProductsCount"`
	Orders                 []UserOrder     `json:"orders,omitempty"`
	CreatedAt              *time.Time      `json:"createdAt,omitempty"`
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
