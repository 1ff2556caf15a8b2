package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon 优惠券
// 有效/过期不落库，展示时按 ExpiryDate 与当前时间比较
type Coupon struct {
	ID                 string          `json:"_id,omitempty"`
	Code               string          `json:"code" validate:"required,max=64"`
	DiscountPercentage int             `json:"discountPercentage" validate:"min=1,max=100"`
	MinimumAmount      decimal.Decimal `json:"minimumAmount"`
	ExpiryDate         time.Time       `json:"expiryDate" validate:"required"`
	MaxUsage           int             `json:"maxUsage" validate:"min=1"`
	UsedCount          int             `json:"usedCount"`
}

// IsExpired 相对 now 是否已过期
func (c Coupon) IsExpired(now time.Time) bool {
	return c.ExpiryDate.Before(now)
}

// StatusLabel 展示用状态
func (c Coupon) StatusLabel(now time.Time) string {
	if c.IsExpired(now) {
		return "Expired"
	}
	return "Active"
}
