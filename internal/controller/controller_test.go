package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/middleware"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

// backendResp 模拟后端响应
type backendResp struct {
	status int
	body   string
}

func ok200(body string) backendResp { return backendResp{status: http.StatusOK, body: body} }

// backendCall 后端收到的请求
type backendCall struct {
	Method string
	Path   string
	Token  string
}

type testEnv struct {
	router *gin.Engine
	audit  *service.AuditService

	mu    sync.Mutex
	calls []backendCall
}

func (e *testEnv) called(method, path string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range e.calls {
		if c.Method == method && c.Path == path {
			return true
		}
	}
	return false
}

func (e *testEnv) tokenFor(method, path string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range e.calls {
		if c.Method == method && c.Path == path {
			return c.Token
		}
	}
	return ""
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Session{}, &model.AuditLog{}))
	return db
}

// setupEnv 后端由 httptest 模拟，本地会话与审计用 sqlite
func setupEnv(t *testing.T, routes map[string]backendResp) *testEnv {
	env := &testEnv{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.mu.Lock()
		env.calls = append(env.calls, backendCall{Method: r.Method, Path: r.URL.Path, Token: r.Header.Get("token")})
		env.mu.Unlock()

		resp, found := routes[r.Method+" "+r.URL.Path]
		if !found {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"message":"route not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(srv.Close)

	db := setupTestDB(t)
	d := net.NewClient(net.ClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})

	audit := service.NewAuditService(repository.NewAuditLogRepository(db))
	authSvc := service.NewAuthService(repository.NewAuthRepository(d), repository.NewSessionRepository(db), audit, time.Hour)

	adminCtl := NewAdminController(authSvc, audit)
	orderCtl := NewOrderController(service.NewOrderService(repository.NewOrderRepository(d), audit))
	productCtl := NewProductController(service.NewProductService(repository.NewCatalogRepository(d), audit))

	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api")
	api.POST("/admin/login", adminCtl.Login)
	auth := api.Group("", middleware.SessionAuth(authSvc))
	{
		auth.POST("/admin/logout", adminCtl.Logout)
		auth.GET("/admin/session", adminCtl.Session)
		auth.GET("/admin/audit-logs", adminCtl.AuditLogs)
		auth.GET("/orders", orderCtl.List)
		auth.GET("/orders/:id", orderCtl.Get)
		auth.PUT("/orders/:id/return", orderCtl.Return)
		auth.POST("/products", productCtl.Create)
	}

	env.router = r
	env.audit = audit
	return env
}

type apiResp struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body io.Reader, contentType string) (*httptest.ResponseRecorder, apiResp) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp apiResp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, payload any) (*httptest.ResponseRecorder, apiResp) {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return e.do(t, method, path, token, bytes.NewReader(b), "application/json")
}

// login 返回 access token
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	w, resp := e.doJSON(t, http.MethodPost, "/api/admin/login", "", gin.H{
		"email":    "admin@phonewraps.in",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

var loginOK = map[string]backendResp{
	"POST /api/auth/admin": ok200(`{"success":true,"token":"backend-token"}`),
}

func withRoutes(extra map[string]backendResp) map[string]backendResp {
	out := map[string]backendResp{}
	for k, v := range loginOK {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// ==================== 登录与会话 ====================

func TestAdminController_Login(t *testing.T) {
	env := setupEnv(t, loginOK)
	token := env.login(t)

	w, resp := env.do(t, http.MethodGet, "/api/admin/session", token, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), "admin@phonewraps.in")
	assert.NotContains(t, w.Body.String(), "backend-token")

	logs, total, err := env.audit.List(context.Background(), repository.AuditLogFilter{Action: model.AuditActionLogin})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, model.AuditStatusSuccess, logs[0].Status)
}

func TestAdminController_Login_InvalidEmail(t *testing.T) {
	env := setupEnv(t, loginOK)

	w, resp := env.doJSON(t, http.MethodPost, "/api/admin/login", "", gin.H{"email": "nope", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(resp.Data), `"field":"email"`)
	assert.False(t, env.called(http.MethodPost, "/api/auth/admin"))
}

func TestAdminController_Login_BackendRejects(t *testing.T) {
	env := setupEnv(t, map[string]backendResp{
		"POST /api/auth/admin": {status: http.StatusUnauthorized, body: `{"success":false,"message":"Invalid credentials"}`},
	})

	w, resp := env.doJSON(t, http.MethodPost, "/api/admin/login", "", gin.H{"email": "admin@phonewraps.in", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestAdminController_Logout(t *testing.T) {
	env := setupEnv(t, loginOK)
	token := env.login(t)

	w, _ := env.do(t, http.MethodPost, "/api/admin/logout", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/admin/session", token, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoute_RequiresSession(t *testing.T) {
	env := setupEnv(t, loginOK)

	w, _ := env.do(t, http.MethodGet, "/api/orders", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.calls)
}

// ==================== 订单 ====================

const orderJSON = `{
	"_id": "o1",
	"status": "Delivered",
	"items": [
		{"productName": "Neon Wrap", "phoneModel": "iPhone 15", "collectionName": "Neon", "quantity": 2, "price": 299},
		{"name": "Matte Wrap", "phoneModel": "Pixel 8", "quantity": 1, "price": 199}
	],
	"returnRequest": {"isRequested": true, "status": "Pending"},
	"totalAmount": 797
}`

func TestOrderController_List(t *testing.T) {
	env := setupEnv(t, withRoutes(map[string]backendResp{
		"POST /api/orders/list": ok200(`{"success":true,"orders":[` + orderJSON + `]}`),
	}))
	token := env.login(t)

	w, resp := env.do(t, http.MethodGet, "/api/orders", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "backend-token", env.tokenFor(http.MethodPost, "/api/orders/list"))

	var list []struct {
		ID      string               `json:"_id"`
		Summary service.OrderSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "o1", list[0].ID)
	assert.Equal(t, 3, list[0].Summary.ItemCount)
	assert.Equal(t, []string{"Pixel 8", "iPhone 15"}, list[0].Summary.Models)
	assert.True(t, list[0].Summary.CanDelete)
	assert.True(t, list[0].Summary.CanAdjudicate)
}

func TestOrderController_Get_Grouped(t *testing.T) {
	env := setupEnv(t, withRoutes(map[string]backendResp{
		"GET /api/orders/o1": ok200(`{"success":true,"order":` + orderJSON + `}`),
	}))
	token := env.login(t)

	w, resp := env.do(t, http.MethodGet, "/api/orders/o1", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail struct {
		Groups []struct {
			PhoneModel string `json:"phoneModel"`
			ItemCount  int    `json:"itemCount"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Len(t, detail.Groups, 2)
}

func TestOrderController_Return(t *testing.T) {
	env := setupEnv(t, withRoutes(map[string]backendResp{
		"GET /api/orders/o1":             ok200(`{"success":true,"order":` + orderJSON + `}`),
		"POST /api/orders/return-status": ok200(`{"success":true,"message":"Return updated"}`),
	}))
	token := env.login(t)

	// 状态不在允许范围
	w, _ := env.doJSON(t, http.MethodPut, "/api/orders/o1/return", token, gin.H{"status": "Maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 拒绝必须填写原因
	w, resp := env.doJSON(t, http.MethodPut, "/api/orders/o1/return", token, gin.H{"status": "Rejected"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(resp.Data), "adminNote")
	assert.False(t, env.called(http.MethodPost, "/api/orders/return-status"))

	w, _ = env.doJSON(t, http.MethodPut, "/api/orders/o1/return", token, gin.H{"status": "Approved"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, env.called(http.MethodPost, "/api/orders/return-status"))
}

// ==================== 商品 ====================

func TestProductController_Create_ValidationBeforeSubmit(t *testing.T) {
	env := setupEnv(t, withRoutes(map[string]backendResp{
		"GET /api/collections": ok200(`{"success":true,"collections":[]}`),
	}))
	token := env.login(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", "Standard"))
	require.NoError(t, mw.WriteField("description", "glossy"))
	require.NoError(t, mw.WriteField("price", "299"))
	require.NoError(t, mw.Close())

	w, resp := env.do(t, http.MethodPost, "/api/products", token, &buf, mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(resp.Data), `"field":"name"`)
	assert.False(t, env.called(http.MethodPost, "/api/products"))
}

// ==================== 错误映射 ====================

func TestRespondError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		msg  string
	}{
		{"校验失败", &service.ValidationError{Field: "name", Message: "Please enter product name"}, http.StatusBadRequest, "Please enter product name"},
		{"会话过期", service.ErrSessionExpired, http.StatusUnauthorized, ""},
		{"后端 404", &net.APIError{StatusCode: http.StatusNotFound, Message: "Order not found"}, http.StatusNotFound, "Order not found"},
		{"后端 200 success:false", &net.APIError{StatusCode: http.StatusOK, Message: "Coupon exists"}, http.StatusUnprocessableEntity, "Coupon exists"},
		{"网络错误", &net.TransportError{Method: "GET", Path: "/api/orders", Err: errors.New("connection refused")}, http.StatusBadGateway, "店铺后端暂时不可用，请稍后重试"},
		{"未知错误", errors.New("boom"), http.StatusInternalServerError, "操作失败，请稍后重试"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
			if tt.msg != "" {
				var resp apiResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.msg, resp.Message)
			}
		})
	}
}

// ==================== 表单解析 ====================

func TestParseAmount(t *testing.T) {
	d, err := parseAmount("price", "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = parseAmount("price", " 12.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	_, err = parseAmount("price", "abc")
	ve, ok := service.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "price", ve.Field)
}

func TestParsePositiveInt(t *testing.T) {
	n, err := parsePositiveInt("30")
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	_, err = parsePositiveInt("0")
	assert.Error(t, err)
	_, err = parsePositiveInt("x")
	assert.Error(t, err)
}

func TestParseContentBlocks(t *testing.T) {
	images := []*model.Upload{{Name: "a.png", ContentType: "image/png", Data: []byte("\x89PNG")}}
	raw := `[
		{"type":"heading","level":3,"content":"Care"},
		{"type":"image","alt":"wrap","imageIndex":0},
		{"type":"list","items":["one","two"]}
	]`

	blocks, err := parseContentBlocks(raw, images)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	h, ok := blocks[0].(*model.HeadingBlock)
	require.True(t, ok)
	assert.Equal(t, 3, h.Level)

	img, ok := blocks[1].(*model.ImageBlock)
	require.True(t, ok)
	assert.Same(t, images[0], img.File)
	assert.Equal(t, "wrap", img.Alt)

	empty, err := parseContentBlocks("  ", nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestParseContentBlocks_Errors(t *testing.T) {
	_, err := parseContentBlocks(`{"type":"heading"}`, nil)
	ve, ok := service.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "contentBlocks", ve.Field)

	_, err = parseContentBlocks(`[{"type":"video"}]`, nil)
	ve, ok = service.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "contentBlocks", ve.Field)

	_, err = parseContentBlocks(`[{"type":"image","imageIndex":2}]`, nil)
	ve, ok = service.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "contentImages", ve.Field)
	assert.True(t, strings.Contains(ve.Message, "missing image 2"))
}
