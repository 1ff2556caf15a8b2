package dto

import (
	"time"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

// ==================== 优惠券 ====================

// CouponRequest 创建/编辑优惠券
type CouponRequest struct {
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discountPercentage"`
	MinimumAmount      string    `json:"minimumAmount"`
	ExpiryDate         time.Time `json:"expiryDate"`
	MaxUsage           int       `json:"maxUsage"`
}

// ==================== 博客 ====================

// BlogForm 博客表单 (multipart)
// contentBlocks 为 JSON 数组，图片块的 imageIndex 指向 contentImages 文件字段的顺序
type BlogForm struct {
	Title         string `form:"title"`
	Excerpt       string `form:"excerpt"`
	Author        string `form:"author"`
	Status        string `form:"status"`
	Category      string `form:"category"`
	Tags          string `form:"tags"`
	ContentBlocks string `form:"contentBlocks"`
}

// ==================== 设计素材 ====================

type DesignAssetQuery struct {
	Category string `form:"category"`
	IsActive *bool  `form:"isActive"`
}

// DesignAssetForm 素材上传 (multipart，image 为文件字段)
type DesignAssetForm struct {
	Category string `form:"category"`
	IsActive bool   `form:"isActive,default=true"`
}

// ==================== 品牌 ====================

type BrandRequest struct {
	BrandName string             `json:"brandName"`
	Models    []model.PhoneModel `json:"models"`
}

type BrandModelRequest struct {
	ModelName string `json:"modelName"`
}

// ==================== 首页内容 ====================

type TooltipsRequest struct {
	Tooltips []model.CollectionTooltip `json:"tooltips"`
}

// FeaturedForm 主推商品 (multipart)
type FeaturedForm struct {
	Name         string `form:"name"`
	DisplayOrder int    `form:"displayOrder"`
	IsActive     bool   `form:"isActive,default=true"`
}

// SuggestedForm 推荐商品 (multipart)
type SuggestedForm struct {
	Name         string `form:"name"`
	Price        string `form:"price"`
	Description  string `form:"description"`
	DisplayOrder int    `form:"displayOrder"`
	IsActive     bool   `form:"isActive,default=true"`
}
