package telemetry

import (
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const startedAtKey = "telemetry:started_at"

// DBTracing configures gorm instrumentation
type DBTracing struct {
	// System is the db.system attribute, e.g. postgresql or sqlite
	System string
	// SlowQuery marks spans of statements running longer than this
	SlowQuery time.Duration
	// WithVariables records bound query values in spans; keep off outside development
	WithVariables bool
}

// InstrumentDB registers the otelgorm plugin and a callback that annotates each statement's span
// with rows affected, table, errors and slow-query markers.
func InstrumentDB(db *gorm.DB, cfg DBTracing, logger *zap.Logger) error {
	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.System)}
	if !cfg.WithVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	a := &spanAnnotator{slow: cfg.SlowQuery}
	type hook func(name string, fn func(*gorm.DB)) error
	ops := map[string][2]hook{
		"create": {
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Create().Before("gorm:create").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Create().After("gorm:create").Register(n, fn) },
		},
		"query": {
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Query().Before("gorm:query").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Query().After("gorm:query").Register(n, fn) },
		},
		"update": {
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Update().Before("gorm:update").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Update().After("gorm:update").Register(n, fn) },
		},
		"delete": {
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Delete().Before("gorm:delete").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Delete().After("gorm:delete").Register(n, fn) },
		},
		"row": {
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Row().Before("gorm:row").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Row().After("gorm:row").Register(n, fn) },
		},
		"raw": {
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Raw().Before("gorm:raw").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return db.Callback().Raw().After("gorm:raw").Register(n, fn) },
		},
	}
	for op, hooks := range ops {
		if err := hooks[0]("telemetry:start_"+op, a.start); err != nil {
			return err
		}
		if err := hooks[1]("telemetry:annotate_"+op, a.annotate); err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled",
		zap.String("db_system", cfg.System),
		zap.Duration("slow_query_threshold", cfg.SlowQuery),
		zap.Bool("with_variables", cfg.WithVariables),
	)
	return nil
}

type spanAnnotator struct {
	slow time.Duration
}

func (a *spanAnnotator) start(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func (a *spanAnnotator) annotate(db *gorm.DB) {
	if db.Statement.Context == nil {
		return
	}
	span := trace.SpanFromContext(db.Statement.Context)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}
	v, ok := db.InstanceGet(startedAtKey)
	if !ok {
		return
	}
	if elapsed := time.Since(v.(time.Time)); a.slow > 0 && elapsed > a.slow {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("threshold_ms", a.slow.Milliseconds()),
		))
	}
}
