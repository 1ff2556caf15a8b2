package model

import (
	"github.com/shopspring/decimal"
)

// ==================== 商品类型 ====================

const (
	ProductTypeGaming   = "gaming"
	ProductTypeStandard = "Standard"
	ProductTypeNormal   = "normal" // 后端对普通商品/普通合集的叫法

	MinLevel = 1
	MaxLevel = 5
)

// IsGamingType 是否游戏类型
func IsGamingType(t string) bool {
	return t == ProductTypeGaming
}

// ProductDesign 商品设计信息
type ProductDesign struct {
	Type           string `json:"type,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	HexCode        string `json:"hexCode,omitempty"`
	Pattern        string `json:"pattern,omitempty"`
	Customizable   bool   `json:"customizable,omitempty"`
}

// Product 商品
// Price 对游戏商品无意义，价格由所属合集决定
type Product struct {
	ID          string          `json:"_id,omitempty"`
	AltID       string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Type        string          `json:"type,omitempty"`
	Level       int             `json:"level,omitempty"`
	Category    string          `json:"category,omitempty"`
	Material    string          `json:"material,omitempty"`
	Finish      string          `json:"finish,omitempty"`
	Design      ProductDesign   `json:"design"`
	Features    []string        `json:"features,omitempty"`
	Image       string          `json:"image,omitempty"`
	Images      []string        `json:"images,omitempty"`

	CollectionID Ref `json:"collectionId,omitempty"`
	GroupID      Ref `json:"groupId,omitempty"`
}

// Key 后端混用 _id 和 id
func (p Product) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.AltID
}

// ProductPatch 列表页编辑商品，全字段覆盖
// level 创建后不可修改，这里不提供
type ProductPatch struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}
