package ai

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "emphasis",
			src:  "You spent **too much** on food.",
			want: "<strong>too much</strong>",
		},
		{
			name: "heading",
			src:  "## Weekly Plan",
			want: "<h2>Weekly Plan</h2>",
		},
		{
			name: "list",
			src:  "- save $50\n- skip takeout",
			want: "<li>save $50</li>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderMarkdown(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("expected output to contain %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	got, err := RenderMarkdown(`Hello <script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("expected raw HTML escaped, got %q", got)
	}
}
