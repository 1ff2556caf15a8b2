package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Session{}, &model.AuditLog{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// ==================== 会话 ====================

func TestSessionRepo_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now()

	s := &model.Session{ID: "s1", Email: "admin@shop.com", BackendToken: "tok", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.BackendToken)
	assert.Equal(t, "admin@shop.com", got.Email)

	require.NoError(t, repo.Touch(ctx, "s1", now))

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "s1"), ErrSessionNotFound)
}

func TestSessionRepo_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &model.Session{ID: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Create(ctx, &model.Session{ID: "new", ExpiresAt: now.Add(time.Hour)}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err := repo.CountActive(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	_, err = repo.Get(ctx, "new")
	assert.NoError(t, err)
}

// ==================== 审计日志 ====================

func TestAuditLogRepo_ListAndFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	logs := []*model.AuditLog{
		{Email: "a@x.com", Action: model.AuditActionCreate, Resource: "coupon", Status: model.AuditStatusSuccess, Payload: datatypes.JSON(`{"code":"SAVE10"}`)},
		{Email: "a@x.com", Action: model.AuditActionDelete, Resource: "coupon", Status: model.AuditStatusFailed, ErrorMsg: "not found"},
		{Email: "b@x.com", Action: model.AuditActionStatus, Resource: "order", Status: model.AuditStatusSuccess},
	}
	for _, l := range logs {
		require.NoError(t, repo.Create(ctx, l))
	}

	all, total, err := repo.List(ctx, AuditLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 3)
	assert.Equal(t, "order", all[0].Resource, "最新的在前")

	coupons, total, err := repo.List(ctx, AuditLogFilter{Resource: "coupon", Status: model.AuditStatusFailed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "not found", coupons[0].ErrorMsg)

	page, total, err := repo.List(ctx, AuditLogFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 1)
}

func TestAuditLogRepo_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	for _, st := range []string{model.AuditStatusSuccess, model.AuditStatusSuccess, model.AuditStatusFailed} {
		require.NoError(t, repo.Create(ctx, &model.AuditLog{Resource: "blog", Status: st}))
	}

	stats, err := repo.Stats(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "blog", stats[0].Resource)
	assert.Equal(t, int64(3), stats[0].TotalCount)
	assert.Equal(t, int64(2), stats[0].SuccessCount)
	assert.Equal(t, int64(1), stats[0].FailedCount)
}

func TestAuditLogRepo_DeleteBefore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	old := &model.AuditLog{Resource: "coupon", Status: model.AuditStatusSuccess}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, db.Model(old).Update("created_at", time.Now().AddDate(0, 0, -100)).Error)
	require.NoError(t, repo.Create(ctx, &model.AuditLog{Resource: "coupon", Status: model.AuditStatusSuccess}))

	n, err := repo.DeleteBefore(ctx, time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, total, err := repo.List(ctx, AuditLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
