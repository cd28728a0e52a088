package slog

import (
	"log/slog"
	"time"

	"github.com/sitefetch/sitefetch"
)

// Ensure LoggingRegistry implements sitefetch.LinkSelectorRegistry.
var _ sitefetch.LinkSelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a LinkSelectorRegistry with debug logging for framework detection.
type LoggingRegistry struct {
	next     sitefetch.LinkSelectorRegistry
	detector sitefetch.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next sitefetch.LinkSelectorRegistry, detector sitefetch.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(framework sitefetch.Framework) sitefetch.LinkSelector {
	return r.next.Get(framework)
}

// GetForHTML detects the framework, logs it, and returns the appropriate selector.
func (r *LoggingRegistry) GetForHTML(html string) sitefetch.LinkSelector {
	begin := time.Now()
	framework := r.detector.Detect(html)
	frameworkName := string(framework)
	if framework == sitefetch.FrameworkUnknown {
		frameworkName = "(unknown)"
	}
	r.logger.Info("framework detection",
		"framework", frameworkName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(framework sitefetch.Framework, selector sitefetch.LinkSelector) {
	r.next.Register(framework, selector)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []sitefetch.Framework {
	return r.next.List()
}
