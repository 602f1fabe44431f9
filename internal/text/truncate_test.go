package text

import (
	"strings"
	"testing"
)

func TestProcessForDisplay(t *testing.T) {
	longHashtags := "#spa #beauty #relax #wellness #selfcare #luxury #treatment #pamper #glow"
	longContent := strings.Repeat("abcde", 10) // 50 chars

	tests := []struct {
		name         string
		content      string
		hashtags     string
		limit        int
		expanded     bool
		wantContent  string
		wantHashtags string
		wantMore     bool
		wantRemain   int
	}{
		{
			name:         "fits within limit",
			content:      "Hello",
			hashtags:     "#hi",
			limit:        20,
			wantContent:  "Hello",
			wantHashtags: "#hi",
			wantMore:     false,
		},
		{
			name:         "exact fit is not truncated",
			content:      "Hello",
			hashtags:     "#hi",
			limit:        9, // len("Hello #hi")
			wantContent:  "Hello",
			wantHashtags: "#hi",
			wantMore:     false,
		},
		{
			name:         "expanded returns full text but still reports overflow",
			content:      longContent,
			hashtags:     longHashtags,
			limit:        30,
			expanded:     true,
			wantContent:  longContent,
			wantHashtags: longHashtags,
			wantMore:     true,
		},
		{
			name:        "limit inside content drops hashtags",
			content:     longContent,
			hashtags:    "",
			limit:       30,
			wantContent: longContent[:30],
			wantMore:    true,
			wantRemain:  20,
		},
		{
			name:         "limit inside hashtags slices to budget",
			content:      "Hello world",
			hashtags:     longHashtags,
			limit:        20,
			wantContent:  "Hello world",
			wantHashtags: longHashtags[:8], // 20 - 11 - 1
			wantMore:     true,
			wantRemain:   11 + 1 + len(longHashtags) - 20,
		},
		{
			name:         "small hashtag overflow shown in full",
			content:      "Hello world",
			hashtags:     "#spa #beauty #relax",
			limit:        20, // overflow is 11 chars, under tolerance
			wantContent:  "Hello world",
			wantHashtags: "#spa #beauty #relax",
			wantMore:     false,
		},
		{
			name:        "empty content with hashtags only",
			content:     "",
			hashtags:    longHashtags,
			limit:       10,
			wantContent: "",
			// budget is 10-0-1=9, overflow well above tolerance
			wantHashtags: longHashtags[:9],
			wantMore:     true,
			wantRemain:   1 + len(longHashtags) - 10,
		},
		{
			name:        "no hashtags and overflowing content",
			content:     "Hello world",
			hashtags:    "",
			limit:       5,
			wantContent: "Hello",
			wantMore:    true,
			wantRemain:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProcessForDisplay(tt.content, tt.hashtags, tt.limit, tt.expanded)
			if got.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantContent)
			}
			if got.Hashtags != tt.wantHashtags {
				t.Errorf("Hashtags = %q, want %q", got.Hashtags, tt.wantHashtags)
			}
			if got.ShouldShowMore != tt.wantMore {
				t.Errorf("ShouldShowMore = %v, want %v", got.ShouldShowMore, tt.wantMore)
			}
			if got.RemainingChars != tt.wantRemain {
				t.Errorf("RemainingChars = %d, want %d", got.RemainingChars, tt.wantRemain)
			}
		})
	}
}

func TestProcessForDisplayExpandedAlwaysFull(t *testing.T) {
	contents := []string{"", "short", strings.Repeat("x", 500)}
	hashtags := []string{"", "#one", strings.Repeat("#tag ", 40)}

	for _, c := range contents {
		for _, h := range hashtags {
			got := ProcessForDisplay(c, h, 10, true)
			if got.Content != c || got.Hashtags != h {
				t.Errorf("expanded call modified text: content %q hashtags %q", got.Content, got.Hashtags)
			}
		}
	}
}

func TestProcessForDisplayPure(t *testing.T) {
	a := ProcessForDisplay("Hello world", "#spa #beauty", 12, false)
	b := ProcessForDisplay("Hello world", "#spa #beauty", 12, false)
	if a != b {
		t.Errorf("identical inputs produced different results: %+v vs %+v", a, b)
	}
}

func TestProcessForDisplayMultibyte(t *testing.T) {
	// Limits count characters, not bytes
	content := "héllo wörld and then some"
	got := ProcessForDisplay(content, "", 11, false)
	if got.Content != "héllo wörld" {
		t.Errorf("Content = %q, want %q", got.Content, "héllo wörld")
	}
}
