// Package sitefetch provides a CLI tool for mirroring websites as local
// markdown files. It discovers page URLs from sitemaps (falling back to
// recursive link-following), fetches and renders pages concurrently,
// extracts the main content, and writes one .md file per page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, trafilatura/).
package sitefetch
