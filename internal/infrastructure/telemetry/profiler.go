package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"github.com/grafana/pyroscope-go"
	"github.com/precast-erp/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Profiling label keys
const (
	ProfilingLabelOperation = "operation"
	ProfilingLabelRoute     = "route"
)

// profileTypes are the profiles pushed to Pyroscope
var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
	pyroscope.ProfileMutexCount,
	pyroscope.ProfileMutexDuration,
	pyroscope.ProfileBlockCount,
	pyroscope.ProfileBlockDuration,
}

// pyroscopeConfig builds the Pyroscope client settings for the service
func pyroscopeConfig(cfg config.ProfilingConfig, serviceName string, logger *zap.Logger) (pyroscope.Config, error) {
	if cfg.ServerAddress == "" {
		return pyroscope.Config{}, fmt.Errorf("telemetry.profiling.server_address is required when profiling is enabled")
	}
	tags := map[string]string{"version": serviceVersion}
	if host := os.Getenv("HOSTNAME"); host != "" {
		tags["hostname"] = host
	}
	return pyroscope.Config{
		ApplicationName:   serviceName,
		ServerAddress:     cfg.ServerAddress,
		BasicAuthUser:     cfg.BasicAuthUser,
		BasicAuthPassword: cfg.BasicAuthPassword,
		Logger:            pyroscopeLogger{logger.Sugar().Named("pyroscope")},
		Tags:              tags,
		ProfileTypes:      profileTypes,
	}, nil
}

// startProfiler starts continuous profiling and returns the running profiler
func startProfiler(cfg config.ProfilingConfig, serviceName string, logger *zap.Logger) (*pyroscope.Profiler, error) {
	pcfg, err := pyroscopeConfig(cfg, serviceName, logger)
	if err != nil {
		return nil, err
	}
	runtime.SetMutexProfileFraction(cfg.MutexProfileFraction)
	runtime.SetBlockProfileRate(cfg.BlockProfileRate)

	profiler, err := pyroscope.Start(pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start Pyroscope profiler: %w", err)
	}
	logger.Info("Continuous profiling started",
		zap.String("server_address", cfg.ServerAddress),
		zap.String("application_name", serviceName),
	)
	return profiler, nil
}

// spanProfiles links CPU profiles to the spans that produced them
func spanProfiles(tp trace.TracerProvider) trace.TracerProvider {
	return otelpyroscope.NewTracerProvider(tp)
}

// Profiled runs fn with profiling labels attached to its goroutine.
// The labels are plain pprof labels, so fn runs normally when profiling is off.
func Profiled(ctx context.Context, fn func(context.Context), kv ...string) {
	pyroscope.TagWrapper(ctx, pyroscope.Labels(kv...), fn)
}

type pyroscopeLogger struct {
	s *zap.SugaredLogger
}

func (l pyroscopeLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l pyroscopeLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l pyroscopeLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
