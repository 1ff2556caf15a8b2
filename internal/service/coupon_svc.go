package service

import (
	"context"
	"strings"
	"time"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
)

// CouponView 列表展示，附带计算出的状态
type CouponView struct {
	model.Coupon
	Status string `json:"status"`
}

// CouponService 优惠券管理
type CouponService struct {
	repo  repository.CouponRepository
	audit *AuditService
	now   func() time.Time
}

func NewCouponService(repo repository.CouponRepository, audit *AuditService) *CouponService {
	return &CouponService{repo: repo, audit: audit, now: time.Now}
}

// List Active/Expired 按当前时间计算，不落库
func (s *CouponService) List(ctx context.Context, who Actor) ([]CouponView, error) {
	coupons, err := s.repo.List(ctx, who.Token)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]CouponView, 0, len(coupons))
	for _, c := range coupons {
		views = append(views, CouponView{Coupon: c, Status: c.StatusLabel(now)})
	}
	return views, nil
}

func (s *CouponService) Create(ctx context.Context, who Actor, c model.Coupon) error {
	c, err := normalizeCoupon(c)
	if err != nil {
		return err
	}
	err = s.repo.Create(ctx, who.Token, c)
	s.audit.Record(ctx, who, model.AuditActionCreate, "coupon", c.Code, c, err)
	return err
}

func (s *CouponService) Update(ctx context.Context, who Actor, id string, c model.Coupon) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Coupon id is required")
	}
	c, err := normalizeCoupon(c)
	if err != nil {
		return err
	}
	c.ID = ""
	err = s.repo.Update(ctx, who.Token, id, c)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "coupon", id, c, err)
	return err
}

func (s *CouponService) Delete(ctx context.Context, who Actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Coupon id is required")
	}
	err := s.repo.Delete(ctx, who.Token, id)
	s.audit.Record(ctx, who, model.AuditActionDelete, "coupon", id, nil, err)
	return err
}

// normalizeCoupon 折扣 1-100；过期时间允许是过去 (仅影响展示)
func normalizeCoupon(c model.Coupon) (model.Coupon, error) {
	c.Code = strings.TrimSpace(c.Code)
	if err := validateStruct(c); err != nil {
		return c, err
	}
	if c.MinimumAmount.IsNegative() {
		return c, invalid("minimumAmount", "minimumAmount must be at least 0")
	}
	return c, nil
}
