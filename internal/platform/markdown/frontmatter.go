package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// RenderFrontmatter prepends a YAML frontmatter block to body. Keys
// are emitted in yaml.v3's sorted order, so output is deterministic.
func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	encoded, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	var b strings.Builder
	b.WriteString(fence)
	b.WriteString("\n")
	b.Write(encoded)
	b.WriteString(fence)
	b.WriteString("\n")
	if !strings.HasPrefix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(body)
	return b.String(), nil
}

// SplitFrontmatter separates a frontmatter block from the body.
// Content without a leading fence is returned whole with empty
// metadata; a fence that never closes is an error.
func SplitFrontmatter(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, fence+"\n") {
		return map[string]any{}, content, nil
	}
	parts := strings.SplitN(content[len(fence)+1:], "\n"+fence+"\n", 2)
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(parts[0]), &meta); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return meta, parts[1], nil
}
