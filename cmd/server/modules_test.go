package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/persistence"
	"github.com/precast-erp/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestBuildModules(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(persistence.Models()...))

	mods := buildModules(db, nil, shared.NoopEventPublisher{}, taskOptions{
		reorderCheckInterval: time.Hour,
		log:                  zap.NewNop(),
	})
	assert.Len(t, mods.registrars, 10)
	require.Len(t, mods.tasks, 1)
	assert.Equal(t, "material-reorder-check", mods.tasks[0].Name)
	assert.NoError(t, mods.tasks[0].Run(context.Background()))

	engine := gin.New()
	router.NewRouter(engine).Register(mods.registrars...).Setup()

	for _, path := range []string{
		"/api/v1/contacts",
		"/api/v1/estimates",
		"/api/v1/projects",
		"/api/v1/employees",
		"/api/v1/materials/reorder-candidates",
		"/api/v1/shipments",
		"/api/v1/opportunities",
	} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
