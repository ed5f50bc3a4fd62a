package telemetry

import (
	"context"
	"testing"

	"github.com/precast-erp/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestSetup_Disabled(t *testing.T) {
	p, err := Setup(context.Background(), config.TelemetryConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))

	base := zap.NewNop()
	assert.Same(t, base, p.BridgeLogger(base, zapcore.InfoLevel))
}

func TestSampler(t *testing.T) {
	assert.Contains(t, Sampler(1).Description(), "AlwaysOnSampler")
	assert.Contains(t, Sampler(0).Description(), "AlwaysOffSampler")
	assert.Contains(t, Sampler(0.25).Description(), "TraceIDRatioBased{0.25}")
}

func TestMinLevelCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(&minLevelCore{Core: core, min: zapcore.WarnLevel}).With(zap.String("module", "yard"))

	log.Info("piece moved")
	log.Warn("location full")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "location full", logs.All()[0].Message)
	assert.Equal(t, "yard", logs.All()[0].ContextMap()["module"])
}

func TestInstrumentDB(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, InstrumentDB(db, DBTracing{System: "sqlite"}, zap.NewNop()))

	type crane struct {
		ID   uint
		Name string
	}
	require.NoError(t, db.AutoMigrate(&crane{}))
	ctx, span := tp.Tracer("test").Start(context.Background(), "request")
	require.NoError(t, db.WithContext(ctx).Create(&crane{Name: "Gantry 1"}).Error)
	var list []crane
	require.NoError(t, db.WithContext(ctx).Find(&list).Error)
	span.End()

	assert.Len(t, list, 1)
	assert.Greater(t, len(recorder.Ended()), 2, "statements are traced as child spans")
}
