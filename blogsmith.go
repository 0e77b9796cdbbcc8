// Package blogsmith drafts blog posts with a hosted language model.
// It generates title candidates, full articles with nested subsections,
// and SEO/social metadata, and exports the result as Markdown or HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, prometheus/, htmltomarkdown/).
package blogsmith
