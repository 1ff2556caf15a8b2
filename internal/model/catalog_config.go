package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ==================== 设计素材 ====================

const (
	AssetCategoryHero     = "HERO"
	AssetCategoryCircular = "CIRCULAR"
	AssetCategoryCard     = "CARD"
)

var AssetCategories = []string{AssetCategoryHero, AssetCategoryCircular, AssetCategoryCard}

// IsAssetCategory 是否为已知素材分类
func IsAssetCategory(c string) bool {
	for _, v := range AssetCategories {
		if v == c {
			return true
		}
	}
	return false
}

// DesignAsset 首页设计素材
type DesignAsset struct {
	ID        string     `json:"_id,omitempty"`
	ImageURL  string     `json:"imageUrl"`
	Category  string     `json:"category"`
	IsActive  bool       `json:"isActive"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ==================== 手机品牌 ====================

type PhoneModel struct {
	ModelName string `json:"modelName"`
}

// PhoneBrand 品牌及其型号
type PhoneBrand struct {
	ID        string       `json:"_id,omitempty"`
	BrandName string       `json:"brandName"`
	Models    []PhoneModel `json:"models"`
	IsActive  bool         `json:"isActive"`
}

// HasModel 型号是否已存在 (忽略大小写)
func (b PhoneBrand) HasModel(name string) bool {
	for _, m := range b.Models {
		if equalFold(m.ModelName, name) {
			return true
		}
	}
	return false
}

// ==================== 合集提示 ====================

const TooltipTiers = 5

// CollectionTooltip 按购买数量 (1-5) 展示的提示文案
type CollectionTooltip struct {
	Quantity int    `json:"quantity" validate:"min=1,max=5"`
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// SortTooltips 按数量升序
func SortTooltips(ts []CollectionTooltip) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Quantity < ts[j].Quantity })
}

// ==================== 首页商品 ====================

const MaxFeaturedProducts = 2

// FeaturedHomeProduct 首页主推商品
type FeaturedHomeProduct struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name"`
	Image        string `json:"image,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

// SuggestedProduct 推荐商品
type SuggestedProduct struct {
	ID           string          `json:"_id,omitempty"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description,omitempty"`
	Image        string          `json:"image,omitempty"`
	DisplayOrder int             `json:"displayOrder"`
	IsActive     bool            `json:"isActive"`
}
