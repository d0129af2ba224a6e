package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var _ hlog.FullLogger = (*HertzSlogAdapter)(nil)

// HertzSlogAdapter routes Hertz's internal logs into slog.
//
// Hertz levels map onto slog as trace/debug -> Debug, info/notice -> Info,
// warn -> Warn, error/fatal -> Error. Messages below the level set through
// SetLevel are dropped before reaching slog.
type HertzSlogAdapter struct {
	logger *slog.Logger
	level  atomic.Int32 // hlog.Level
}

// NewHertzSlogAdapter creates a new Hertz logger adapter using slog
func NewHertzSlogAdapter(logger *slog.Logger) *HertzSlogAdapter {
	a := &HertzSlogAdapter{logger: logger}
	a.level.Store(int32(hlog.LevelTrace))
	return a
}

func slogLevel(level hlog.Level) slog.Level {
	switch level {
	case hlog.LevelTrace, hlog.LevelDebug:
		return slog.LevelDebug
	case hlog.LevelInfo, hlog.LevelNotice:
		return slog.LevelInfo
	case hlog.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (h *HertzSlogAdapter) log(ctx context.Context, level hlog.Level, msg func() string) {
	if level < hlog.Level(h.level.Load()) {
		return
	}
	h.logger.Log(ctx, slogLevel(level), msg(), "component", "hertz")
}

func sprint(v []interface{}) func() string {
	return func() string {
		if len(v) == 1 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
		return fmt.Sprint(v...)
	}
}

func sprintf(format string, v []interface{}) func() string {
	return func() string { return fmt.Sprintf(format, v...) }
}

func (h *HertzSlogAdapter) Trace(v ...interface{}) {
	h.log(context.Background(), hlog.LevelTrace, sprint(v))
}
func (h *HertzSlogAdapter) Debug(v ...interface{}) {
	h.log(context.Background(), hlog.LevelDebug, sprint(v))
}
func (h *HertzSlogAdapter) Info(v ...interface{}) {
	h.log(context.Background(), hlog.LevelInfo, sprint(v))
}
func (h *HertzSlogAdapter) Notice(v ...interface{}) {
	h.log(context.Background(), hlog.LevelNotice, sprint(v))
}
func (h *HertzSlogAdapter) Warn(v ...interface{}) {
	h.log(context.Background(), hlog.LevelWarn, sprint(v))
}
func (h *HertzSlogAdapter) Error(v ...interface{}) {
	h.log(context.Background(), hlog.LevelError, sprint(v))
}
func (h *HertzSlogAdapter) Fatal(v ...interface{}) {
	h.log(context.Background(), hlog.LevelFatal, sprint(v))
}

func (h *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelTrace, sprintf(format, v))
}
func (h *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelDebug, sprintf(format, v))
}
func (h *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelInfo, sprintf(format, v))
}
func (h *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelNotice, sprintf(format, v))
}
func (h *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelWarn, sprintf(format, v))
}
func (h *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelError, sprintf(format, v))
}
func (h *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelFatal, sprintf(format, v))
}

func (h *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelTrace, sprintf(format, v))
}
func (h *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelDebug, sprintf(format, v))
}
func (h *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelInfo, sprintf(format, v))
}
func (h *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelNotice, sprintf(format, v))
}
func (h *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelWarn, sprintf(format, v))
}
func (h *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelError, sprintf(format, v))
}
func (h *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelFatal, sprintf(format, v))
}

// SetLevel sets the minimum Hertz level that is forwarded
func (h *HertzSlogAdapter) SetLevel(level hlog.Level) {
	h.level.Store(int32(level))
}

// SetOutput is a no-op; the slog handler owns the output
func (h *HertzSlogAdapter) SetOutput(writer io.Writer) {}
