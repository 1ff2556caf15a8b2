package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

// ==================== 合集 ====================

// CollectionForm 创建/编辑合集 (multipart，heroImage 为文件字段)
type CollectionForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Type        string `form:"type"`
	Price       string `form:"price"`
	PlatePrice  string `form:"plateprice"`
	Features    string `form:"Features"`
}

// ==================== 分组 ====================

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type AddCollectionRequest struct {
	CollectionID string `json:"collectionId"`
}

// ==================== 商品 ====================

// ProductFormQuery 添加商品表单的级联选择
type ProductFormQuery struct {
	Type         string `form:"type"`
	GroupID      string `form:"groupId"`
	CollectionID string `form:"collectionId"`
	Level        int    `form:"level"`
}

// ProductFormResp 表单当前可选项
type ProductFormResp struct {
	ProductType        string             `json:"productType"`
	Groups             []model.Group      `json:"groups"`
	Collections        []model.Collection `json:"collections"`
	SelectedGroup      string             `json:"selectedGroup"`
	SelectedCollection string             `json:"selectedCollection"`
	Level              int                `json:"level"`
	UsedLevels         []int              `json:"usedLevels"`
	AvailableLevels    []int              `json:"availableLevels"`
	Full               bool               `json:"full"`
}

// CreateProductForm 添加商品 (multipart，image1 为文件字段)
type CreateProductForm struct {
	ProductFormQuery

	Name           string `form:"name"`
	Description    string `form:"description"`
	Price          string `form:"price"`
	Category       string `form:"category"`
	Material       string `form:"material"`
	Finish         string `form:"finish"`
	DesignType     string `form:"designType"`
	PrimaryColor   string `form:"primaryColor"`
	SecondaryColor string `form:"secondaryColor"`
	HexCode        string `form:"hexCode"`
	Pattern        string `form:"pattern"`
	Customizable   bool   `form:"customizable"`
	Features       string `form:"features"`
}

// UpdateProductRequest 列表页编辑商品
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}
