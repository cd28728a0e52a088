package goquery_test

import (
	"testing"

	"github.com/sitefetch/sitefetch"
	"github.com/sitefetch/sitefetch/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Detector implements sitefetch.FrameworkDetector at compile time.
var _ sitefetch.FrameworkDetector = (*goquery.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	// Docusaurus tests - uses __docusaurus skip link and data-theme attribute
	t.Run("detects Docusaurus from __docusaurus_skipToContent_fallback element", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en" data-theme="light" data-rh="lang,dir,data-theme,data-announcement-bar-initially-dismissed">
<head><title>Docusaurus Docs</title></head>
<body>
<a id="__docusaurus_skipToContent_fallback" class="skipToContent_fXgn" href="#__docusaurus_skipToContent_fallback">Skip to main content</a>
<div class="theme-doc-sidebar-container">
	<nav class="menu">
		<ul><li><a href="/docs/intro">Introduction</a></li></ul>
	</nav>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkDocusaurus, framework)
	})

	t.Run("detects Docusaurus from theme-doc-sidebar-container class", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Docusaurus</title></head>
<body>
<div class="theme-doc-sidebar-container">
	<nav class="menu"><ul><li><a href="/docs">Docs</a></li></ul></nav>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkDocusaurus, framework)
	})

	// MkDocs Material tests - uses data-md-color-* attributes
	t.Run("detects MkDocs from data-md-color-scheme attribute", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head><title>MkDocs Material</title></head>
<body data-md-color-scheme="default" data-md-color-primary="indigo" data-md-color-accent="indigo">
<nav class="md-nav md-nav--primary">
	<ul class="md-nav__list">
		<li><a href="/getting-started/">Getting Started</a></li>
	</ul>
</nav>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkMkDocs, framework)
	})

	t.Run("detects MkDocs from data-md-component attribute", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>MkDocs</title></head>
<body>
<div data-md-component="navigation">
	<nav>Navigation</nav>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkMkDocs, framework)
	})

	// Sphinx tests - uses meta generator tag
	t.Run("detects Sphinx from meta generator tag", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title>Sphinx Docs</title>
	<meta name="generator" content="Sphinx 7.2.6">
</head>
<body>
<div class="document">
	<div class="bodywrapper">Content</div>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkSphinx, framework)
	})

	t.Run("detects Sphinx from toctree-wrapper class", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Sphinx Docs</title></head>
<body>
<div class="toctree-wrapper compound">
	<ul>
		<li><a href="intro.html">Introduction</a></li>
	</ul>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkSphinx, framework)
	})

	t.Run("detects Sphinx from wy-nav-side class (ReadTheDocs theme)", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>ReadTheDocs</title></head>
<body>
<nav class="wy-nav-side">
	<div class="wy-menu-vertical">
		<ul><li><a href="#">Docs</a></li></ul>
	</div>
</nav>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkSphinx, framework)
	})

	// VitePress tests - uses VPContent element and VPDoc class
	t.Run("detects VitePress from VPContent element", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en-US" class="dark">
<head><title>VitePress</title></head>
<body>
<a id="VPContent" tabindex="-1"></a>
<div class="VPDoc">
	<div class="VPDocAsideOutline">
		<nav>Table of Contents</nav>
	</div>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkVitePress, framework)
	})

	t.Run("detects VitePress from VPDoc class", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>VitePress</title></head>
<body>
<div class="VPDoc">
	<main>Documentation content</main>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkVitePress, framework)
	})

	// VuePress tests - uses theme-default-content and vuepress color scheme
	t.Run("detects VuePress from theme-default-content class", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en-US">
<head><title>VuePress Docs</title></head>
<body>
<div class="theme-default-content">
	<h1>Getting Started</h1>
	<p>Documentation content here.</p>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkVuePress, framework)
	})

	t.Run("detects VuePress from sidebar-links class", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>VuePress</title></head>
<body>
<aside class="sidebar">
	<ul class="sidebar-links">
		<li><a href="/guide/">Guide</a></li>
	</ul>
</aside>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkVuePress, framework)
	})

	// GitBook tests - uses meta generator tag and gitbook-specific classes
	t.Run("detects GitBook from meta generator tag", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en" class="circular-corners theme-clean tint sidebar-default">
<head>
	<title>GitBook</title>
	<meta name="generator" content="GitBook">
</head>
<body>
<div id="site-header">Header</div>
<div id="site-section">Content</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkGitBook, framework)
	})

	t.Run("detects GitBook from gitbook html classes", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html class="circular-corners theme-clean tint">
<head><title>GitBook</title></head>
<body>
<main>Content</main>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkGitBook, framework)
	})

	t.Run("detects GitBook from data-testid space.sidebar", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>GitBook</title></head>
<body>
<div data-testid="space.sidebar">
	<nav>Sidebar content</nav>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkGitBook, framework)
	})

	// Nextra tests - uses nextra-navbar and nextra-prefixed classes
	t.Run("detects Nextra from nextra-navbar class", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en" dir="ltr">
<head><title>Nextra Docs</title></head>
<body>
<nav class="nextra-navbar">
	<ul><li><a href="/docs">Docs</a></li></ul>
</nav>
<div class="nextra-banner">Announcement</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkNextra, framework)
	})

	t.Run("detects Nextra from nextra-toc class", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Nextra</title></head>
<body>
<div class="nextra-toc">
	<nav>Table of Contents</nav>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkNextra, framework)
	})

	// Priority order tests
	t.Run("meta generator takes priority over CSS class markers", func(t *testing.T) {
		t.Parallel()

		// HTML with Sphinx meta generator AND Docusaurus CSS classes
		// Should return Sphinx because meta generator is checked first
		html := `<!DOCTYPE html>
<html>
<head>
	<title>Conflicting Markers</title>
	<meta name="generator" content="Sphinx 7.2.6">
</head>
<body>
<div class="theme-doc-sidebar-container">
	<nav class="menu"><ul><li><a href="/docs">Docs</a></li></ul></nav>
</div>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkSphinx, framework)
	})

	t.Run("meta generator takes priority over multiple framework markers", func(t *testing.T) {
		t.Parallel()

		// HTML with GitBook meta generator AND MkDocs AND Nextra CSS classes
		html := `<!DOCTYPE html>
<html>
<head>
	<title>Multiple Conflicting Markers</title>
	<meta name="generator" content="GitBook">
</head>
<body data-md-color-scheme="default">
<nav class="nextra-navbar">
	<ul><li><a href="/docs">Docs</a></li></ul>
</nav>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkGitBook, framework)
	})

	// Edge cases
	t.Run("returns FrameworkUnknown for generic HTML", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Generic Site</title></head>
<body>
<nav>
	<ul><li><a href="/about">About</a></li></ul>
</nav>
<main>
	<article>Some content</article>
</main>
</body>
</html>`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		assert.Equal(t, sitefetch.FrameworkUnknown, framework)
	})

	t.Run("returns FrameworkUnknown for empty HTML", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDetector()
		framework := d.Detect("")

		assert.Equal(t, sitefetch.FrameworkUnknown, framework)
	})

	t.Run("returns FrameworkUnknown for malformed HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="incomplete`

		d := goquery.NewDetector()
		framework := d.Detect(html)

		// goquery is lenient with malformed HTML, should still return Unknown
		assert.Equal(t, sitefetch.FrameworkUnknown, framework)
	})
}

func TestDetector_RequiresJS(t *testing.T) {
	t.Parallel()

	d := goquery.NewDetector()

	t.Run("static generators do not require JS", func(t *testing.T) {
		t.Parallel()

		for _, fw := range []sitefetch.Framework{
			sitefetch.FrameworkDocusaurus,
			sitefetch.FrameworkMkDocs,
			sitefetch.FrameworkSphinx,
			sitefetch.FrameworkVuePress,
			sitefetch.FrameworkVitePress,
			sitefetch.FrameworkNextra,
		} {
			requires, known := d.RequiresJS(fw)
			assert.True(t, known, "framework %q should be known", fw)
			assert.False(t, requires, "framework %q should not require JS", fw)
		}
	})

	t.Run("GitBook requires JS", func(t *testing.T) {
		t.Parallel()

		requires, known := d.RequiresJS(sitefetch.FrameworkGitBook)
		assert.True(t, known)
		assert.True(t, requires)
	})

	t.Run("unknown framework is not known", func(t *testing.T) {
		t.Parallel()

		requires, known := d.RequiresJS(sitefetch.FrameworkUnknown)
		assert.False(t, known)
		assert.False(t, requires)
	})
}

func TestDetector_RenderDelay(t *testing.T) {
	t.Parallel()

	d := goquery.NewDetector()

	assert.Zero(t, d.RenderDelay(sitefetch.FrameworkMkDocs))
	assert.Zero(t, d.RenderDelay(sitefetch.FrameworkUnknown))
	assert.Positive(t, d.RenderDelay(sitefetch.FrameworkGitBook))
}
