package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

func catalogFixture() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		collections: []model.Collection{
			{ID: "g1", Name: "Neon", Type: model.CollectionTypeGaming, Products: []model.Ref{{ID: "p1"}}},
			{ID: "g2", Name: "Retro", Type: model.CollectionTypeGaming},
			{ID: "n1", Name: "Marble", Type: model.CollectionTypeNormal},
		},
		groups: []model.Group{
			{ID: "grp1", Name: "Arcade", Members: []model.Ref{{ID: "g1"}}},
		},
		products: []model.Product{
			{ID: "p1", Level: 1},
			{ID: "p2", Level: 2, CollectionID: model.Ref{ID: "g1"}},
			{ID: "p3", Level: 4, CollectionID: model.Ref{ID: "g2"}},
		},
		createMsg: "Product created successfully",
	}
}

func validFields() ProductFields {
	f := defaultProductFields()
	f.Name = "Neon Skull"
	f.Description = "Glow skin"
	f.Image = pngUpload("skull.png")
	return f
}

// ==================== 表单状态 ====================

func TestAddProductForm_GamingCascade(t *testing.T) {
	repo := catalogFixture()
	form := NewAddProductForm()
	form.LoadOptions(repo.collections, repo.groups)

	assert.Equal(t, model.ProductTypeGaming, form.ProductType())
	assert.Len(t, form.AvailableCollections(), 2)

	require.NoError(t, form.SelectGroup("grp1"))
	avail := form.AvailableCollections()
	require.Len(t, avail, 1)
	assert.Equal(t, "g1", avail[0].ID)

	// 非分组成员不可选
	err := form.SelectCollection("g2", repo.products)
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "collectionId", ve.Field)

	require.NoError(t, form.SelectCollection("g1", repo.products))
	assert.Equal(t, []int{1, 2}, form.UsedLevels())
	assert.Equal(t, []int{3, 4, 5}, form.AvailableLevels())
	assert.Equal(t, 3, form.Level())
	assert.False(t, form.Full())

	assert.Error(t, form.SetLevel(2))
	assert.Error(t, form.SetLevel(6))
	require.NoError(t, form.SetLevel(5))

	// 切换分组清空合集
	require.NoError(t, form.SelectGroup(""))
	assert.Empty(t, form.SelectedCollection())
	assert.Equal(t, model.MinLevel, form.Level())
}

func TestAddProductForm_FullCollectionBlocksSubmit(t *testing.T) {
	full := model.Collection{ID: "g9", Type: model.CollectionTypeGaming}
	for l := model.MinLevel; l <= model.MaxLevel; l++ {
		full.Products = append(full.Products, model.Ref{ID: string(rune('a' + l)), Level: l})
	}
	form := NewAddProductForm()
	form.LoadOptions([]model.Collection{full}, []model.Group{{ID: "grp", Members: []model.Ref{{ID: "g9"}}}})
	require.NoError(t, form.SelectGroup("grp"))
	require.NoError(t, form.SelectCollection("g9", nil))
	form.Fields = validFields()

	assert.True(t, form.Full())
	assert.Empty(t, form.AvailableLevels())
	assert.ErrorIs(t, form.Validate(), ErrFormFull)
}

func TestAddProductForm_Standard(t *testing.T) {
	repo := catalogFixture()
	form := NewAddProductForm()
	form.LoadOptions(repo.collections, repo.groups)

	require.NoError(t, form.SetProductType(model.ProductTypeNormal))
	assert.Equal(t, model.ProductTypeStandard, form.ProductType())
	assert.Nil(t, form.Groups())
	avail := form.AvailableCollections()
	require.Len(t, avail, 1)
	assert.Equal(t, "n1", avail[0].ID)
	assert.Error(t, form.SelectGroup("grp1"))

	form.Fields = validFields()
	err := form.Validate()
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "price", ve.Field)

	form.Fields.Price = " 299 "
	require.NoError(t, form.Validate())

	fields := form.FormFields()
	assert.Equal(t, "299", fields["price"])
	assert.Equal(t, model.ProductTypeStandard, fields["type"])
	assert.NotContains(t, fields, "level")
	assert.NotContains(t, fields, "collectionId")

	require.NoError(t, form.SelectCollection("n1", nil))
	assert.Equal(t, "n1", form.FormFields()["collectionId"])
}

func TestAddProductForm_Validate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*ProductFields)
		field string
	}{
		{"名称为空", func(f *ProductFields) { f.Name = "  " }, "name"},
		{"描述为空", func(f *ProductFields) { f.Description = "" }, "description"},
		{"颜色格式", func(f *ProductFields) { f.HexCode = "red" }, "hexCode"},
		{"缺少图片", func(f *ProductFields) { f.Image = nil }, "image1"},
		{"图片类型", func(f *ProductFields) { f.Image = &model.Upload{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")} }, "image1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewAddProductForm()
			form.Fields = validFields()
			tt.edit(&form.Fields)
			ve, ok := IsValidationError(form.Validate())
			require.True(t, ok)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	t.Run("游戏商品必须选分组", func(t *testing.T) {
		form := NewAddProductForm()
		form.Fields = validFields()
		ve, ok := IsValidationError(form.Validate())
		require.True(t, ok)
		assert.Equal(t, "groupId", ve.Field)
	})
}

func TestAddProductForm_SniffsMissingContentType(t *testing.T) {
	repo := catalogFixture()
	form := NewAddProductForm()
	form.LoadOptions(repo.collections, repo.groups)
	require.NoError(t, form.SelectGroup("grp1"))
	require.NoError(t, form.SelectCollection("g1", repo.products))

	form.Fields = validFields()
	form.Fields.Image.ContentType = ""
	require.NoError(t, form.Validate())
	assert.Equal(t, "image/png", form.Fields.Image.ContentType)
}

func TestUsedLevels(t *testing.T) {
	c := model.Collection{ID: "c1", Products: []model.Ref{{ID: "x", Level: 5}, {ID: "p1"}}}
	products := []model.Product{
		{ID: "p1", Level: 3},
		{ID: "p2", Level: 1, CollectionID: model.Ref{ID: "c1"}},
		{ID: "p3", Level: 2, CollectionID: model.Ref{ID: "other"}},
		{ID: "p4", Level: 9, CollectionID: model.Ref{ID: "c1"}},
	}
	assert.Equal(t, []int{1, 3, 5}, UsedLevels(c, products))
}

// ==================== 服务 ====================

func TestProductService_CreateGaming(t *testing.T) {
	repo := catalogFixture()
	svc := NewProductService(repo, nil)

	msg, err := svc.Create(context.Background(), testActor,
		ProductSelection{Type: model.ProductTypeGaming, GroupID: "grp1", CollectionID: "g1"}, validFields())
	require.NoError(t, err)
	assert.Equal(t, "Product created successfully", msg)

	assert.Equal(t, "backend-token", repo.lastToken)
	assert.Equal(t, "0", repo.lastFields["price"])
	assert.Equal(t, "3", repo.lastFields["level"])
	assert.Equal(t, "g1", repo.lastFields["collectionId"])
	assert.Equal(t, "grp1", repo.lastFields["groupId"])
	assert.NotNil(t, repo.lastImage)
}

func TestProductService_ValidationSkipsBackend(t *testing.T) {
	repo := catalogFixture()
	svc := NewProductService(repo, nil)

	fields := validFields()
	fields.Name = ""
	_, err := svc.Create(context.Background(), testActor,
		ProductSelection{Type: model.ProductTypeGaming, GroupID: "grp1", CollectionID: "g1"}, fields)
	_, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Zero(t, repo.called("CreateProduct"))

	_, err = svc.PrepareForm(context.Background(), ProductSelection{Type: "tablet"})
	assert.Error(t, err)
}

func TestProductService_SubmitResetsOnlyOnSuccess(t *testing.T) {
	repo := catalogFixture()
	svc := NewProductService(repo, nil)

	form, err := svc.PrepareForm(context.Background(), ProductSelection{Type: model.ProductTypeStandard})
	require.NoError(t, err)
	form.Fields = validFields()
	form.Fields.Price = "199"

	repo.writeErr = errors.New("backend down")
	_, err = svc.Submit(context.Background(), testActor, form)
	require.Error(t, err)
	assert.Equal(t, "Neon Skull", form.Fields.Name)

	repo.writeErr = nil
	_, err = svc.Submit(context.Background(), testActor, form)
	require.NoError(t, err)
	assert.Empty(t, form.Fields.Name)
	assert.Equal(t, "Phone Case", form.Fields.Category)
	assert.Equal(t, model.ProductTypeStandard, form.ProductType())
}

func TestProductService_Update(t *testing.T) {
	repo := catalogFixture()
	svc := NewProductService(repo, nil)

	err := svc.Update(context.Background(), testActor, "p1", model.ProductPatch{Name: " ", Price: decimal.NewFromInt(10)})
	assert.Error(t, err)
	err = svc.Update(context.Background(), testActor, "p1", model.ProductPatch{Name: "Skin", Price: decimal.NewFromInt(-1)})
	assert.Error(t, err)
	assert.Zero(t, repo.called("UpdateProduct"))

	require.NoError(t, svc.Update(context.Background(), testActor, "p1", model.ProductPatch{Name: " Skin ", Price: decimal.NewFromInt(249)}))
	assert.Equal(t, "Skin", repo.lastPatch.Name)
}
