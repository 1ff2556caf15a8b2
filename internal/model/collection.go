package model

import (
	"github.com/shopspring/decimal"
)

// ==================== 合集类型 ====================

const (
	CollectionTypeGaming = "gaming"
	CollectionTypeNormal = "normal"
)

// Collection 合集
// 游戏合集按 level 收录最多 5 个商品，整体定价
type Collection struct {
	ID          string          `json:"_id,omitempty"`
	AltID       string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type,omitempty"`
	HeroImage   string          `json:"heroImage,omitempty"`
	Price       decimal.Decimal `json:"price"`
	PlatePrice  decimal.Decimal `json:"plateprice"`
	Features    []string        `json:"Features,omitempty"`
	Products    []Ref           `json:"Products,omitempty"`
}

func (c Collection) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return c.AltID
}

func (c Collection) IsGaming() bool {
	return c.Type == CollectionTypeGaming
}

// Group 合集分组，仅用于添加游戏商品时限定可选合集
type Group struct {
	ID      string `json:"_id,omitempty"`
	AltID   string `json:"id,omitempty"`
	Name    string `json:"name"`
	Members []Ref  `json:"members,omitempty"`
}

func (g Group) Key() string {
	if g.ID != "" {
		return g.ID
	}
	return g.AltID
}

// HasMember 合集是否属于该分组
func (g Group) HasMember(collectionID string) bool {
	if collectionID == "" {
		return false
	}
	for _, m := range g.Members {
		if m.ID == collectionID {
			return true
		}
	}
	return false
}
