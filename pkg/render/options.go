package render

// DefaultSeparator closes every segment block in the canonical output.
const DefaultSeparator = "----------------"

// RenderOptions describe per-request presentation tweaks that do not affect
// which words match.
type RenderOptions struct {
	// Separator replaces DefaultSeparator in renderers that print one.
	Separator string
	// Title labels documents that have a heading (HTML report).
	Title string
	// IncludeConstraints asks structured renderers to emit the decoded
	// constraint next to each match list.
	IncludeConstraints bool
}

// SeparatorOrDefault returns the configured separator or DefaultSeparator.
func (o RenderOptions) SeparatorOrDefault() string {
	if o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}
