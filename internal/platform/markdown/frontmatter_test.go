package markdown_test

import (
	"strings"
	"testing"

	"focusdeck/internal/platform/markdown"
)

func TestRenderThenSplitRoundtrip(t *testing.T) {
	t.Parallel()
	meta := map[string]any{"profile": "Dana", "total_seconds": 3300}
	content, err := markdown.RenderFrontmatter(meta, "# Study report\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(content, "---\n") {
		t.Fatalf("missing opening separator:\n%s", content)
	}

	decoded, body, err := markdown.SplitFrontmatter(content)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if decoded["profile"] != "Dana" || decoded["total_seconds"] != 3300 {
		t.Fatalf("metadata lost: %+v", decoded)
	}
	if !strings.Contains(body, "# Study report") {
		t.Fatalf("body lost: %q", body)
	}
}

func TestSplitWithoutFrontmatterReturnsBodyUnchanged(t *testing.T) {
	t.Parallel()
	meta, body, err := markdown.SplitFrontmatter("plain body\n")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(meta) != 0 || body != "plain body\n" {
		t.Fatalf("unexpected: %+v %q", meta, body)
	}
}

func TestSplitRejectsUnterminatedFrontmatter(t *testing.T) {
	t.Parallel()
	if _, _, err := markdown.SplitFrontmatter("---\nkey: value\n"); err == nil {
		t.Fatalf("missing closing separator must fail")
	}
}
