package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

func TestResolveItemImage(t *testing.T) {
	design := &model.CustomDesign{DesignImageURL: "design.png", OriginalImageURL: "orig.png"}
	tests := []struct {
		name string
		item model.OrderItem
		want string
	}{
		{"行图片优先", model.OrderItem{Image: "item.png", CustomDesign: design, ProductImage: "prod.png"}, "item.png"},
		{"定制设计图", model.OrderItem{CustomDesign: design, ProductImage: "prod.png"}, "design.png"},
		{"定制原图", model.OrderItem{CustomDesign: &model.CustomDesign{OriginalImageURL: "orig.png"}}, "orig.png"},
		{"商品快照", model.OrderItem{ProductImage: "prod.png", CollectionImage: "col.png"}, "prod.png"},
		{"合集快照", model.OrderItem{CollectionImage: "col.png", ProductID: model.Ref{ID: "p", Images: []string{"p1.png"}}}, "col.png"},
		{"商品图集", model.OrderItem{ProductID: model.Ref{ID: "p", Images: []string{"p1.png", "p2.png"}, Image: "single.png"}}, "p1.png"},
		{"商品单图", model.OrderItem{ProductID: model.Ref{ID: "p", Image: "single.png"}, CollectionID: model.Ref{ID: "c", HeroImage: "hero.png"}}, "single.png"},
		{"合集主图", model.OrderItem{CollectionID: model.Ref{ID: "c", HeroImage: "hero.png"}}, "hero.png"},
		{"无图", model.OrderItem{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveItemImage(tt.item))
		})
	}
}

func TestItemNames(t *testing.T) {
	assert.Equal(t, "A", ItemDisplayName(model.OrderItem{ProductName: "A", Name: "B"}))
	assert.Equal(t, "B", ItemDisplayName(model.OrderItem{Name: "B", ProductID: model.Ref{Name: "C"}}))
	assert.Equal(t, "C", ItemDisplayName(model.OrderItem{ProductID: model.Ref{ID: "p", Name: "C"}}))
	assert.Equal(t, CustomDesignName, ItemDisplayName(model.OrderItem{}))

	assert.Equal(t, "Neon", ItemCollectionName(model.OrderItem{CollectionName: "Neon"}))
	assert.Equal(t, "Retro", ItemCollectionName(model.OrderItem{CollectionID: model.Ref{ID: "c", Name: "Retro"}}))
	assert.Equal(t, NoCollectionBucket, ItemCollectionName(model.OrderItem{}))
}

func TestGroupItemsByModel(t *testing.T) {
	items := []model.OrderItem{
		{ID: "1", PhoneModel: "iPhone 15", CollectionName: "Neon"},
		{ID: "2", PhoneModel: ""},
		{ID: "3", PhoneModel: "iPhone 15", CollectionName: "Retro"},
		{ID: "4", PhoneModel: "iPhone 15", CollectionName: "Neon"},
		{ID: "5", PhoneModel: "Pixel 8"},
	}
	buckets := GroupItemsByModel(items)
	require.Len(t, buckets, 3)

	assert.Equal(t, "iPhone 15", buckets[0].PhoneModel)
	assert.Equal(t, 3, buckets[0].ItemCount)
	require.Len(t, buckets[0].Collections, 2)
	assert.Equal(t, "Neon", buckets[0].Collections[0].CollectionName)
	assert.Equal(t, "1", buckets[0].Collections[0].Items[0].ID)
	assert.Equal(t, "4", buckets[0].Collections[0].Items[1].ID)
	assert.Equal(t, "Retro", buckets[0].Collections[1].CollectionName)

	assert.Equal(t, NoModelBucket, buckets[1].PhoneModel)
	assert.Equal(t, NoCollectionBucket, buckets[1].Collections[0].CollectionName)
	assert.Equal(t, "Pixel 8", buckets[2].PhoneModel)

	assert.Empty(t, GroupItemsByModel(nil))
}

func TestSummarize(t *testing.T) {
	o := &model.Order{
		Status: model.OrderStatusDelivered,
		Items: []model.OrderItem{
			{PhoneModel: "iPhone 15", CollectionName: "Neon", Quantity: 2},
			{PhoneModel: "Pixel 8", Quantity: 1},
			{PhoneModel: "iPhone 15", CollectionName: "Neon", Quantity: 1},
		},
		Plates:        []model.Plate{{Quantity: 2}},
		ReturnRequest: &model.ReturnRequest{IsRequested: true, Status: model.ReturnStatusPending},
	}
	s := Summarize(o)
	assert.Equal(t, 4, s.ItemCount)
	assert.Equal(t, 2, s.PlateCount)
	assert.Equal(t, []string{"Pixel 8", "iPhone 15"}, s.Models)
	assert.Equal(t, []string{"Neon"}, s.Collections)
	assert.True(t, s.CanDelete)
	assert.True(t, s.CanAdjudicate)
	assert.True(t, s.HasReturnRequest)
}

func TestCanDelete(t *testing.T) {
	for _, status := range model.OrderStatuses {
		want := status == model.OrderStatusDelivered || status == model.OrderStatusCancelled
		assert.Equal(t, want, CanDelete(&model.Order{Status: status}), status)
	}
	assert.False(t, CanDelete(nil))
}

func orderFixture() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*model.Order{
		"o1": {ID: "o1", Status: model.OrderStatusShipped},
		"o2": {ID: "o2", Status: model.OrderStatusDelivered, ReturnRequest: &model.ReturnRequest{IsRequested: true, Status: model.ReturnStatusPending}},
		"o3": {ID: "o3", Status: model.OrderStatusDelivered, ReturnRequest: &model.ReturnRequest{IsRequested: true, Status: model.ReturnStatusApproved}},
	}}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := orderFixture()
	svc := NewOrderService(repo, nil)
	ctx := context.Background()

	assert.Error(t, svc.UpdateStatus(ctx, testActor, "o1", "Lost"))
	assert.Zero(t, repo.called("UpdateStatus"))

	// 不维护流转表，已送达也可改回待处理
	require.NoError(t, svc.UpdateStatus(ctx, testActor, "o2", model.OrderStatusPending))
	assert.Equal(t, model.OrderStatusPending, repo.lastStatus)
}

func TestOrderService_UpdateTracking(t *testing.T) {
	repo := orderFixture()
	svc := NewOrderService(repo, nil)
	ctx := context.Background()

	err := svc.UpdateTracking(ctx, testActor, model.TrackingInfo{OrderID: "o1", TrackingLink: "not a link"})
	assert.Error(t, err)

	require.NoError(t, svc.UpdateTracking(ctx, testActor, model.TrackingInfo{
		OrderID:        "o1",
		TrackingNumber: " AWB123 ",
		CourierPartner: "Delhivery",
		TrackingLink:   "https://track.example.com/AWB123",
	}))
	assert.Equal(t, "AWB123", repo.lastTracking.TrackingNumber)
	assert.Equal(t, 1, repo.called("UpdateTracking"))
}

func TestOrderService_AdjudicateReturn(t *testing.T) {
	repo := orderFixture()
	svc := NewOrderService(repo, nil)
	ctx := context.Background()

	// 拒绝必须写原因
	err := svc.AdjudicateReturnByID(ctx, testActor, "o2", false, "  ")
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "adminNote", ve.Field)
	assert.Zero(t, repo.called("UpdateReturnStatus"))

	require.NoError(t, svc.AdjudicateReturnByID(ctx, testActor, "o2", false, "Used product"))
	assert.Equal(t, model.ReturnStatusRejected, repo.lastStatus)
	assert.Equal(t, "Used product", repo.lastNote)

	require.NoError(t, svc.AdjudicateReturnByID(ctx, testActor, "o2", true, ""))
	assert.Equal(t, model.ReturnStatusApproved, repo.lastStatus)

	// 已处理的申请不可再审批
	assert.Error(t, svc.AdjudicateReturnByID(ctx, testActor, "o3", true, ""))
	assert.Error(t, svc.AdjudicateReturnByID(ctx, testActor, "o1", true, ""))
	assert.Equal(t, 2, repo.called("UpdateReturnStatus"))
}

func TestOrderService_Delete(t *testing.T) {
	repo := orderFixture()
	svc := NewOrderService(repo, nil)
	ctx := context.Background()

	assert.Error(t, svc.DeleteByID(ctx, testActor, "o1"))
	assert.Error(t, svc.DeleteByID(ctx, testActor, "missing"))
	require.NoError(t, svc.DeleteByID(ctx, testActor, "o2"))
	assert.Equal(t, 1, repo.called("Delete"))
}
