package mock

import (
	"time"

	"github.com/sitefetch/sitefetch"
)

var _ sitefetch.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of sitefetch.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]sitefetch.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]sitefetch.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	return s.NameFn()
}

var _ sitefetch.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of sitefetch.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) sitefetch.Framework
}

func (d *FrameworkDetector) Detect(html string) sitefetch.Framework {
	return d.DetectFn(html)
}

var _ sitefetch.Prober = (*Prober)(nil)

// Prober is a mock implementation of sitefetch.Prober.
type Prober struct {
	DetectFn      func(html string) sitefetch.Framework
	RequiresJSFn  func(framework sitefetch.Framework) (requires bool, known bool)
	RenderDelayFn func(framework sitefetch.Framework) time.Duration
}

func (p *Prober) Detect(html string) sitefetch.Framework {
	return p.DetectFn(html)
}

func (p *Prober) RequiresJS(framework sitefetch.Framework) (requires bool, known bool) {
	return p.RequiresJSFn(framework)
}

func (p *Prober) RenderDelay(framework sitefetch.Framework) time.Duration {
	if p.RenderDelayFn != nil {
		return p.RenderDelayFn(framework)
	}
	return 0
}

var _ sitefetch.LinkSelectorRegistry = (*LinkSelectorRegistry)(nil)

// LinkSelectorRegistry is a mock implementation of sitefetch.LinkSelectorRegistry.
type LinkSelectorRegistry struct {
	GetFn        func(framework sitefetch.Framework) sitefetch.LinkSelector
	GetForHTMLFn func(html string) sitefetch.LinkSelector
	RegisterFn   func(framework sitefetch.Framework, selector sitefetch.LinkSelector)
	ListFn       func() []sitefetch.Framework
}

func (r *LinkSelectorRegistry) Get(framework sitefetch.Framework) sitefetch.LinkSelector {
	return r.GetFn(framework)
}

func (r *LinkSelectorRegistry) GetForHTML(html string) sitefetch.LinkSelector {
	return r.GetForHTMLFn(html)
}

func (r *LinkSelectorRegistry) Register(framework sitefetch.Framework, selector sitefetch.LinkSelector) {
	r.RegisterFn(framework, selector)
}

func (r *LinkSelectorRegistry) List() []sitefetch.Framework {
	return r.ListFn()
}
