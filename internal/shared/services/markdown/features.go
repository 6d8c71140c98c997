// Package markdown turns the markdown an operator types into a package's
// features field into the HTML served as features_html.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// FeatureRenderer renders package feature text.
type FeatureRenderer interface {
	Render(features string) (string, error)
}

type featureRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewFeatureRenderer renders GitHub-flavoured markdown with single newlines
// kept as line breaks, then strips anything outside the UGC allow-list.
func NewFeatureRenderer() FeatureRenderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span")

	return &featureRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: policy,
	}
}

// Render returns "" for blank input.
func (r *featureRenderer) Render(features string) (string, error) {
	if strings.TrimSpace(features) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(features), &buf); err != nil {
		return "", fmt.Errorf("failed to render features: %w", err)
	}
	return strings.TrimSpace(r.policy.SanitizeReader(&buf).String()), nil
}
