package service

import (
	"strconv"
	"strings"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/validation"
)

// ProductFields 添加商品表单的输入项
type ProductFields struct {
	Name           string
	Description    string
	Price          string // 原始输入，游戏商品忽略
	Category       string
	Material       string
	Finish         string
	DesignType     string
	PrimaryColor   string
	SecondaryColor string
	HexCode        string
	Pattern        string
	Customizable   bool
	Features       string // 逗号分隔
	Image          *model.Upload
}

// defaultProductFields 表单初始值
func defaultProductFields() ProductFields {
	return ProductFields{
		Category:   "Phone Case",
		Material:   "TPU",
		Finish:     "Matte",
		DesignType: "Solid Color",
	}
}

// AddProductForm 添加商品的级联选择状态
//
//	游戏商品: 选分组 -> 可选合集收窄为分组成员 -> 选合集 -> 计算已占用等级，自动跳到第一个空等级
//	普通商品: 只列出 normal 合集，没有分组与等级
//
// 所有方法都是纯状态变换，不做网络请求
type AddProductForm struct {
	Fields ProductFields

	productType string
	collections []model.Collection
	groups      []model.Group

	selectedGroup      string
	selectedCollection string
	level              int
	usedLevels         map[int]bool
}

// NewAddProductForm 默认游戏商品
func NewAddProductForm() *AddProductForm {
	f := &AddProductForm{productType: model.ProductTypeGaming}
	f.Reset()
	return f
}

// Reset 提交成功后恢复默认值，保留已加载的合集与分组
func (f *AddProductForm) Reset() {
	f.Fields = defaultProductFields()
	f.selectedGroup = ""
	f.selectedCollection = ""
	f.level = model.MinLevel
	f.usedLevels = map[int]bool{}
}

func (f *AddProductForm) ProductType() string { return f.productType }

// SetProductType 切换商品类型，清空合集与分组选择
func (f *AddProductForm) SetProductType(t string) error {
	switch t {
	case model.ProductTypeGaming, model.ProductTypeStandard:
	case model.ProductTypeNormal:
		t = model.ProductTypeStandard
	default:
		return invalid("type", "Unknown product type %q", t)
	}
	f.productType = t
	f.selectedGroup = ""
	f.selectedCollection = ""
	f.level = model.MinLevel
	f.usedLevels = map[int]bool{}
	return nil
}

// LoadOptions 载入后端返回的合集和分组
func (f *AddProductForm) LoadOptions(collections []model.Collection, groups []model.Group) {
	f.collections = collections
	f.groups = groups
}

func (f *AddProductForm) isGaming() bool {
	return f.productType == model.ProductTypeGaming
}

// Groups 可选分组，仅游戏商品
func (f *AddProductForm) Groups() []model.Group {
	if !f.isGaming() {
		return nil
	}
	return f.groups
}

// AvailableCollections 当前可选合集
// 按类型过滤；游戏商品选了分组后只保留该分组成员
func (f *AddProductForm) AvailableCollections() []model.Collection {
	want := model.CollectionTypeNormal
	if f.isGaming() {
		want = model.CollectionTypeGaming
	}

	var group *model.Group
	if f.isGaming() && f.selectedGroup != "" {
		group = f.findGroup(f.selectedGroup)
	}

	out := make([]model.Collection, 0, len(f.collections))
	for _, c := range f.collections {
		if c.Type != want {
			continue
		}
		if group != nil && !group.HasMember(c.Key()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *AddProductForm) SelectedGroup() string      { return f.selectedGroup }
func (f *AddProductForm) SelectedCollection() string { return f.selectedCollection }

// SelectGroup 选择分组，重置合集选择
func (f *AddProductForm) SelectGroup(id string) error {
	if !f.isGaming() {
		return invalid("groupId", "Groups only apply to gaming products")
	}
	if id != "" && f.findGroup(id) == nil {
		return invalid("groupId", "Selected group does not exist")
	}
	f.selectedGroup = id
	f.selectedCollection = ""
	f.level = model.MinLevel
	f.usedLevels = map[int]bool{}
	return nil
}

// SelectCollection 选择合集，根据已有商品计算占用等级并自动选择第一个空等级
func (f *AddProductForm) SelectCollection(id string, products []model.Product) error {
	if id == "" {
		f.selectedCollection = ""
		f.usedLevels = map[int]bool{}
		f.level = model.MinLevel
		return nil
	}

	var picked *model.Collection
	for _, c := range f.AvailableCollections() {
		if c.Key() == id {
			picked = &c
			break
		}
	}
	if picked == nil {
		return invalid("collectionId", "Selected collection is not available for this product type or group")
	}

	f.selectedCollection = id
	f.usedLevels = map[int]bool{}
	if f.isGaming() {
		for _, l := range UsedLevels(*picked, products) {
			f.usedLevels[l] = true
		}
		f.level = f.firstFreeLevel()
	}
	return nil
}

// UsedLevels 已占用等级 (合集成员商品及声明属于该合集的商品)
func (f *AddProductForm) UsedLevels() []int {
	return sortedLevels(f.usedLevels, true)
}

// AvailableLevels 可选等级
func (f *AddProductForm) AvailableLevels() []int {
	return sortedLevels(f.usedLevels, false)
}

// Full 5 个等级全部占用，禁止提交
func (f *AddProductForm) Full() bool {
	return f.isGaming() && f.selectedCollection != "" && len(f.usedLevels) >= model.MaxLevel
}

func (f *AddProductForm) Level() int { return f.level }

// SetLevel 手动选择等级，已占用的等级不可选
func (f *AddProductForm) SetLevel(l int) error {
	if l < model.MinLevel || l > model.MaxLevel {
		return invalid("level", "Level must be between %d and %d", model.MinLevel, model.MaxLevel)
	}
	if f.usedLevels[l] {
		return invalid("level", "Level %d is already used in this collection", l)
	}
	f.level = l
	return nil
}

// Validate 提交前校验，任一项不满足即返回，不发请求
func (f *AddProductForm) Validate() error {
	fl := f.Fields
	if !validation.ValidateRequired(fl.Name) {
		return invalid("name", "Please enter product name")
	}
	if !validation.ValidateRequired(fl.Description) {
		return invalid("description", "Please enter product description")
	}
	if !f.isGaming() && !validation.ValidatePositiveNumber(fl.Price) {
		return invalid("price", "Please enter a valid price")
	}
	if fl.HexCode != "" && !validation.ValidateHexColor(fl.HexCode) {
		return invalid("hexCode", "Hex code must look like #RRGGBB")
	}
	if err := checkImage("image1", fl.Image, validation.MaxImageSize); err != nil {
		return err
	}

	if f.isGaming() {
		if f.selectedGroup == "" {
			return invalid("groupId", "Please select a group for gaming products")
		}
		if f.selectedCollection == "" {
			return invalid("collectionId", "Please select a collection for gaming products")
		}
		if f.Full() {
			return ErrFormFull
		}
		if f.usedLevels[f.level] {
			return invalid("level", "Level %d is already used in this collection", f.level)
		}
	}
	return nil
}

// FormFields 转为后端 multipart 字段
func (f *AddProductForm) FormFields() map[string]string {
	fl := f.Fields
	price := "0"
	if !f.isGaming() {
		price = strings.TrimSpace(fl.Price)
	}

	fields := map[string]string{
		"name":           validation.SanitizeInput(fl.Name),
		"description":    validation.SanitizeInput(fl.Description),
		"price":          price,
		"type":           f.productType,
		"category":       fl.Category,
		"material":       fl.Material,
		"finish":         fl.Finish,
		"designType":     fl.DesignType,
		"primaryColor":   fl.PrimaryColor,
		"secondaryColor": fl.SecondaryColor,
		"hexCode":        fl.HexCode,
		"pattern":        fl.Pattern,
		"customizable":   strconv.FormatBool(fl.Customizable),
		"features":       validation.SanitizeInput(fl.Features),
	}

	if f.isGaming() {
		fields["level"] = strconv.Itoa(f.level)
		fields["collectionId"] = f.selectedCollection
		fields["groupId"] = f.selectedGroup
	} else if f.selectedCollection != "" {
		fields["collectionId"] = f.selectedCollection
	}
	return fields
}

func (f *AddProductForm) findGroup(id string) *model.Group {
	for i := range f.groups {
		if f.groups[i].Key() == id {
			return &f.groups[i]
		}
	}
	return nil
}

func (f *AddProductForm) firstFreeLevel() int {
	for l := model.MinLevel; l <= model.MaxLevel; l++ {
		if !f.usedLevels[l] {
			return l
		}
	}
	// 已满，保持最后一级，由 Full 阻止提交
	return model.MaxLevel
}

// UsedLevels 计算合集中已占用的等级
// 成员引用已展开时直接取 level，否则从商品列表中查
func UsedLevels(c model.Collection, products []model.Product) []int {
	used := map[int]bool{}
	members := map[string]bool{}
	for _, ref := range c.Products {
		members[ref.ID] = true
		if ref.Level >= model.MinLevel && ref.Level <= model.MaxLevel {
			used[ref.Level] = true
		}
	}

	for _, p := range products {
		if p.Level < model.MinLevel || p.Level > model.MaxLevel {
			continue
		}
		if members[p.Key()] || (p.CollectionID.ID != "" && p.CollectionID.ID == c.Key()) {
			used[p.Level] = true
		}
	}
	return sortedLevels(used, true)
}

// sortedLevels used=true 返回已占用等级，否则返回空闲等级
func sortedLevels(set map[int]bool, used bool) []int {
	out := []int{}
	for l := model.MinLevel; l <= model.MaxLevel; l++ {
		if set[l] == used {
			out = append(out, l)
		}
	}
	return out
}
