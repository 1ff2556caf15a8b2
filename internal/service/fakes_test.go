package service

import (
	"context"
	"sync"
	"time"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
)

// ==================== 测试辅助 ====================

var testActor = Actor{SessionID: "sess-1", Email: "admin@phonewraps.in", Token: "backend-token", RequestID: "req-1"}

// pngUpload 带 PNG 文件头的最小上传
func pngUpload(name string) *model.Upload {
	return &model.Upload{
		Name:        name,
		ContentType: "image/png",
		Data:        []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"),
	}
}

// callLog 记录对 fake 仓储的调用
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) called(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		if c == name {
			n++
		}
	}
	return n
}

// ==================== 商品目录 ====================

type fakeCatalogRepo struct {
	callLog
	products    []model.Product
	collections []model.Collection
	groups      []model.Group
	listErr     error
	writeErr    error
	createMsg   string

	lastFields map[string]string
	lastImage  *model.Upload
	lastToken  string
	lastPatch  model.ProductPatch
}

func (f *fakeCatalogRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	f.add("ListProducts")
	return f.products, f.listErr
}

func (f *fakeCatalogRepo) CreateProduct(ctx context.Context, token string, fields map[string]string, image *model.Upload) (string, error) {
	f.add("CreateProduct")
	f.lastToken, f.lastFields, f.lastImage = token, fields, image
	return f.createMsg, f.writeErr
}

func (f *fakeCatalogRepo) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) error {
	f.add("UpdateProduct")
	f.lastPatch = patch
	return f.writeErr
}

func (f *fakeCatalogRepo) DeleteProduct(ctx context.Context, token, id string) error {
	f.add("DeleteProduct")
	f.lastToken = token
	return f.writeErr
}

func (f *fakeCatalogRepo) ListCollections(ctx context.Context) ([]model.Collection, error) {
	f.add("ListCollections")
	return f.collections, f.listErr
}

func (f *fakeCatalogRepo) CreateCollection(ctx context.Context, fields map[string]string, hero *model.Upload) error {
	f.add("CreateCollection")
	f.lastFields, f.lastImage = fields, hero
	return f.writeErr
}

func (f *fakeCatalogRepo) UpdateCollection(ctx context.Context, id string, fields map[string]string, hero *model.Upload) error {
	f.add("UpdateCollection")
	f.lastFields, f.lastImage = fields, hero
	return f.writeErr
}

func (f *fakeCatalogRepo) DeleteCollection(ctx context.Context, token, id string) error {
	f.add("DeleteCollection")
	f.lastToken = token
	return f.writeErr
}

func (f *fakeCatalogRepo) ListGroups(ctx context.Context) ([]model.Group, error) {
	f.add("ListGroups")
	return f.groups, f.listErr
}

func (f *fakeCatalogRepo) CreateGroup(ctx context.Context, name string) error {
	f.add("CreateGroup")
	f.lastFields = map[string]string{"name": name}
	return f.writeErr
}

func (f *fakeCatalogRepo) AddCollectionToGroup(ctx context.Context, groupID, collectionID string) error {
	f.add("AddCollectionToGroup")
	return f.writeErr
}

func (f *fakeCatalogRepo) DeleteGroup(ctx context.Context, groupID string) error {
	f.add("DeleteGroup")
	return f.writeErr
}

// ==================== 订单 ====================

type fakeOrderRepo struct {
	callLog
	orders   map[string]*model.Order
	writeErr error

	lastStatus   string
	lastNote     string
	lastTracking model.TrackingInfo
}

func (f *fakeOrderRepo) List(ctx context.Context, token string) ([]model.Order, error) {
	f.add("List")
	out := make([]model.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Get(ctx context.Context, token, id string) (*model.Order, error) {
	f.add("Get")
	return f.orders[id], nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, token, id, status string) error {
	f.add("UpdateStatus")
	f.lastStatus = status
	return f.writeErr
}

func (f *fakeOrderRepo) UpdateTracking(ctx context.Context, token string, info model.TrackingInfo) error {
	f.add("UpdateTracking")
	f.lastTracking = info
	return f.writeErr
}

func (f *fakeOrderRepo) UpdateReturnStatus(ctx context.Context, token, id, status, adminNote string) error {
	f.add("UpdateReturnStatus")
	f.lastStatus, f.lastNote = status, adminNote
	return f.writeErr
}

func (f *fakeOrderRepo) Delete(ctx context.Context, token, id string) error {
	f.add("Delete")
	return f.writeErr
}

// ==================== 博客 ====================

type fakeBlogRepo struct {
	callLog
	urls     []string
	writeErr error

	lastID      string
	lastFields  map[string]string
	lastCover   *model.Upload
	lastUploads []*model.Upload
}

func (f *fakeBlogRepo) List(ctx context.Context) ([]model.Blog, error) {
	f.add("List")
	return nil, nil
}

func (f *fakeBlogRepo) Save(ctx context.Context, token, id string, fields map[string]string, cover *model.Upload, contentImages []*model.Upload) ([]string, error) {
	f.add("Save")
	f.lastID, f.lastFields, f.lastCover, f.lastUploads = id, fields, cover, contentImages
	return f.urls, f.writeErr
}

func (f *fakeBlogRepo) Delete(ctx context.Context, token, id string) error {
	f.add("Delete")
	return f.writeErr
}

// ==================== 优惠券 ====================

type fakeCouponRepo struct {
	callLog
	coupons  []model.Coupon
	writeErr error
	last     model.Coupon
}

func (f *fakeCouponRepo) List(ctx context.Context, token string) ([]model.Coupon, error) {
	f.add("List")
	return f.coupons, nil
}

func (f *fakeCouponRepo) Create(ctx context.Context, token string, c model.Coupon) error {
	f.add("Create")
	f.last = c
	return f.writeErr
}

func (f *fakeCouponRepo) Update(ctx context.Context, token, id string, c model.Coupon) error {
	f.add("Update")
	f.last = c
	return f.writeErr
}

func (f *fakeCouponRepo) Delete(ctx context.Context, token, id string) error {
	f.add("Delete")
	return f.writeErr
}

// ==================== 设计素材 ====================

type fakeDesignAssetRepo struct {
	callLog
	lastFilter   repository.DesignAssetFilter
	lastCategory string
}

func (f *fakeDesignAssetRepo) List(ctx context.Context, filter repository.DesignAssetFilter) ([]model.DesignAsset, error) {
	f.add("List")
	f.lastFilter = filter
	return []model.DesignAsset{}, nil
}

func (f *fakeDesignAssetRepo) Create(ctx context.Context, token string, category string, isActive bool, image *model.Upload) error {
	f.add("Create")
	f.lastCategory = category
	return nil
}

func (f *fakeDesignAssetRepo) Update(ctx context.Context, token, id string, category string, isActive bool, image *model.Upload) error {
	f.add("Update")
	f.lastCategory = category
	return nil
}

func (f *fakeDesignAssetRepo) Delete(ctx context.Context, token, id string) error {
	f.add("Delete")
	return nil
}

// ==================== 品牌 ====================

type fakePhoneBrandRepo struct {
	callLog
	lastName   string
	lastModels []model.PhoneModel
}

func (f *fakePhoneBrandRepo) List(ctx context.Context) ([]model.PhoneBrand, error) {
	f.add("List")
	return nil, nil
}

func (f *fakePhoneBrandRepo) Create(ctx context.Context, brandName string, models []model.PhoneModel) error {
	f.add("Create")
	f.lastName, f.lastModels = brandName, models
	return nil
}

func (f *fakePhoneBrandRepo) Update(ctx context.Context, id, brandName string, models []model.PhoneModel) error {
	f.add("Update")
	f.lastName, f.lastModels = brandName, models
	return nil
}

func (f *fakePhoneBrandRepo) Delete(ctx context.Context, id string) error {
	f.add("Delete")
	return nil
}

func (f *fakePhoneBrandRepo) AddModel(ctx context.Context, id, modelName string) error {
	f.add("AddModel")
	return nil
}

func (f *fakePhoneBrandRepo) RemoveModel(ctx context.Context, id, modelName string) error {
	f.add("RemoveModel")
	return nil
}

func (f *fakePhoneBrandRepo) ToggleStatus(ctx context.Context, id string) (string, error) {
	f.add("ToggleStatus")
	return "Brand status updated", nil
}

// ==================== 首页内容 ====================

type fakeHomeContentRepo struct {
	callLog
	featured  []model.FeaturedHomeProduct
	suggested []model.SuggestedProduct
	settings  model.SiteSettings

	lastTooltips []model.CollectionTooltip
}

func (f *fakeHomeContentRepo) ListTooltips(ctx context.Context) ([]model.CollectionTooltip, error) {
	f.add("ListTooltips")
	return f.lastTooltips, nil
}

func (f *fakeHomeContentRepo) SaveTooltips(ctx context.Context, token string, tooltips []model.CollectionTooltip) error {
	f.add("SaveTooltips")
	f.lastTooltips = tooltips
	return nil
}

func (f *fakeHomeContentRepo) GetSettings(ctx context.Context) (*model.SiteSettings, error) {
	f.add("GetSettings")
	s := f.settings
	return &s, nil
}

func (f *fakeHomeContentRepo) SaveSettings(ctx context.Context, token string, s model.SiteSettings) (*model.SiteSettings, error) {
	f.add("SaveSettings")
	f.settings = s
	return &s, nil
}

func (f *fakeHomeContentRepo) ResetSettings(ctx context.Context, token string) (*model.SiteSettings, error) {
	f.add("ResetSettings")
	f.settings = model.DefaultSiteSettings()
	s := f.settings
	return &s, nil
}

func (f *fakeHomeContentRepo) ListFeatured(ctx context.Context) ([]model.FeaturedHomeProduct, error) {
	f.add("ListFeatured")
	return f.featured, nil
}

func (f *fakeHomeContentRepo) SaveFeatured(ctx context.Context, token, id string, p model.FeaturedHomeProduct, image *model.Upload) error {
	f.add("SaveFeatured")
	return nil
}

func (f *fakeHomeContentRepo) DeleteFeatured(ctx context.Context, token, id string) error {
	f.add("DeleteFeatured")
	return nil
}

func (f *fakeHomeContentRepo) ListSuggested(ctx context.Context) ([]model.SuggestedProduct, error) {
	f.add("ListSuggested")
	return f.suggested, nil
}

func (f *fakeHomeContentRepo) SaveSuggested(ctx context.Context, token, id string, p model.SuggestedProduct, image *model.Upload) error {
	f.add("SaveSuggested")
	return nil
}

func (f *fakeHomeContentRepo) DeleteSuggested(ctx context.Context, token, id string) error {
	f.add("DeleteSuggested")
	return nil
}

// ==================== 用户与登录 ====================

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) ListAll(ctx context.Context, token string) ([]model.User, error) {
	return f.users, nil
}

type fakeAuthRepo struct {
	callLog
	token string
	err   error
}

func (f *fakeAuthRepo) Login(ctx context.Context, email, password string) (string, error) {
	f.add("Login")
	return f.token, f.err
}

// fixedClock 固定时间
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
