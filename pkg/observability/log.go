package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every layout, render and cache event as a debug line.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks writing to logger. A nil logger uses log.Default().
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

// Install registers h for all three event categories.
func (h *LogHooks) Install() {
	SetLayoutHooks(h)
	SetRenderHooks(h)
	SetCacheHooks(h)
}

func (h *LogHooks) OnInsert(index, count int) {
	h.logger.Debug("insert", "index", index, "items", count)
}

func (h *LogHooks) OnRemove(index, count int) {
	h.logger.Debug("remove", "index", index, "items", count)
}

func (h *LogHooks) OnRefresh(count int, d time.Duration) {
	h.logger.Debug("refresh", "items", count, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string, items int) {
	h.logger.Debug("render start", "formats", formats, "items", items)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "took", d, "err", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "kind", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "kind", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "kind", keyType, "bytes", size)
}

var (
	_ LayoutHooks = (*LogHooks)(nil)
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
)
