package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitefetch/sitefetch"
)

// Detector identifies documentation frameworks from HTML content.
// It checks for framework-specific CSS classes, data attributes, meta tags,
// and structural markers that are unique to each documentation generator.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Ensure Detector implements sitefetch.Prober at compile time.
var _ sitefetch.Prober = (*Detector)(nil)

// frameworkInfo records rendering requirements per framework.
type frameworkInfo struct {
	requiresJS  bool
	renderDelay int // milliseconds after page load
}

// knownFrameworks maps each recognized framework to its rendering needs.
// Static site generators serve complete HTML; GitBook hydrates its
// navigation client-side and needs a browser plus settle time.
var knownFrameworks = map[sitefetch.Framework]frameworkInfo{
	sitefetch.FrameworkDocusaurus: {requiresJS: false},
	sitefetch.FrameworkMkDocs:     {requiresJS: false},
	sitefetch.FrameworkSphinx:     {requiresJS: false},
	sitefetch.FrameworkVuePress:   {requiresJS: false},
	sitefetch.FrameworkVitePress:  {requiresJS: false},
	sitefetch.FrameworkNextra:     {requiresJS: false},
	sitefetch.FrameworkGitBook:    {requiresJS: true, renderDelay: 2000},
}

// RequiresJS indicates whether a framework requires JavaScript rendering.
// Unknown frameworks return (false, false).
func (d *Detector) RequiresJS(framework sitefetch.Framework) (requires bool, known bool) {
	info, ok := knownFrameworks[framework]
	if !ok {
		return false, false
	}
	return info.requiresJS, true
}

// RenderDelay returns the recommended delay after page load for a framework.
// Returns 0 for frameworks that don't need extra delay.
func (d *Detector) RenderDelay(framework sitefetch.Framework) time.Duration {
	info, ok := knownFrameworks[framework]
	if !ok {
		return 0
	}
	return time.Duration(info.renderDelay) * time.Millisecond
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) sitefetch.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return sitefetch.FrameworkUnknown
	}

	// Check meta generator tags first - most reliable when present
	if framework := d.detectFromMetaGenerator(doc); framework != sitefetch.FrameworkUnknown {
		return framework
	}

	// Check for Docusaurus markers
	// __docusaurus_skipToContent_fallback is highly specific
	if d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-sidebar-container") ||
		d.hasSelector(doc, "[data-rh]") && d.hasSelector(doc, "[data-theme]") {
		return sitefetch.FrameworkDocusaurus
	}

	// Check for MkDocs Material markers
	// data-md-color-* attributes are unique to MkDocs Material
	if d.hasSelector(doc, "[data-md-color-scheme]") ||
		d.hasSelector(doc, "[data-md-component]") ||
		d.hasSelector(doc, ".md-nav--primary") {
		return sitefetch.FrameworkMkDocs
	}

	// Check for Sphinx markers (including ReadTheDocs theme)
	if d.hasSelector(doc, ".toctree-wrapper") ||
		d.hasSelector(doc, ".wy-nav-side") ||
		d.hasSelector(doc, ".wy-menu-vertical") ||
		d.hasSelector(doc, ".sphinxsidebar") {
		return sitefetch.FrameworkSphinx
	}

	// Check for VitePress markers (before VuePress since VitePress is a VuePress successor)
	// #VPContent and .VPDoc are unique to VitePress
	if d.hasSelector(doc, "#VPContent") ||
		d.hasSelector(doc, ".VPDoc") ||
		d.hasSelector(doc, ".VPDocAsideOutline") {
		return sitefetch.FrameworkVitePress
	}

	// Check for VuePress markers
	if d.hasSelector(doc, ".theme-default-content") ||
		d.hasSelector(doc, ".sidebar-links") ||
		d.hasSelector(doc, ".vuepress-navbar") {
		return sitefetch.FrameworkVuePress
	}

	// Check for GitBook markers
	// GitBook uses specific classes on html element: circular-corners, theme-clean, tint
	if d.hasSelector(doc, "[data-testid='space.sidebar']") ||
		d.hasSelector(doc, "[data-testid='page.desktopTableOfContents']") ||
		d.hasGitBookClasses(doc) {
		return sitefetch.FrameworkGitBook
	}

	// Check for Nextra markers
	if d.hasSelector(doc, ".nextra-navbar") ||
		d.hasSelector(doc, ".nextra-sidebar") ||
		d.hasSelector(doc, ".nextra-toc") {
		return sitefetch.FrameworkNextra
	}

	return sitefetch.FrameworkUnknown
}

// detectFromMetaGenerator checks the meta generator tag for framework identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) sitefetch.Framework {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return sitefetch.FrameworkUnknown
	}

	switch {
	case strings.Contains(generator, "sphinx"):
		return sitefetch.FrameworkSphinx
	case strings.Contains(generator, "gitbook"):
		return sitefetch.FrameworkGitBook
	case strings.Contains(generator, "docusaurus"):
		return sitefetch.FrameworkDocusaurus
	case strings.Contains(generator, "mkdocs"):
		return sitefetch.FrameworkMkDocs
	case strings.Contains(generator, "vitepress"):
		return sitefetch.FrameworkVitePress
	case strings.Contains(generator, "vuepress"):
		return sitefetch.FrameworkVuePress
	case strings.Contains(generator, "nextra"):
		return sitefetch.FrameworkNextra
	}

	return sitefetch.FrameworkUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// hasGitBookClasses checks for GitBook-specific classes on the html element.
// GitBook uses a combination of: circular-corners, theme-clean, tint
func (d *Detector) hasGitBookClasses(doc *goquery.Document) bool {
	htmlClass := ""
	doc.Find("html").Each(func(_ int, s *goquery.Selection) {
		if class, exists := s.Attr("class"); exists {
			htmlClass = class
		}
	})

	if htmlClass == "" {
		return false
	}

	// GitBook has a distinctive combination of classes
	hasCircularCorners := strings.Contains(htmlClass, "circular-corners")
	hasThemeClean := strings.Contains(htmlClass, "theme-clean")
	hasTint := strings.Contains(htmlClass, "tint")

	// Require at least two of these GitBook-specific classes
	count := 0
	if hasCircularCorners {
		count++
	}
	if hasThemeClean {
		count++
	}
	if hasTint {
		count++
	}

	return count >= 2
}
