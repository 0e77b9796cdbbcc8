package blogsmith

// Converter turns pasted article HTML into Markdown so that metadata
// prompts quote prose rather than markup.
type Converter interface {
	// Convert returns the Markdown form of an HTML fragment or document.
	// Empty input and HTML that cannot be converted return EINVALID.
	Convert(html string) (string, error)
}
