package cli

import (
	"strings"
	"testing"

	"docuchat/internal/api"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rfc3339", "2026-08-29T14:30:05Z", "2026-08-29 14:30:05"},
		{"rfc3339 with offset", "2026-08-29T14:30:05+02:00", "2026-08-29 14:30:05"},
		{"iso without zone", "2026-08-29T14:30:05", "2026-08-29 14:30:05"},
		{"iso with fraction", "2026-08-29T14:30:05.123456", "2026-08-29 14:30:05"},
		{"unparseable passes through", "last tuesday", "last tuesday"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatTimestamp(tt.in)
			if got != tt.want {
				t.Errorf("formatTimestamp(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short unchanged", "hello", 50, "hello"},
		{"exactly max unchanged", strings.Repeat("a", 50), 50, strings.Repeat("a", 50)},
		{"over max cut with ellipsis", strings.Repeat("a", 51), 50, strings.Repeat("a", 50) + "..."},
		{"multibyte counted as runes", strings.Repeat("ä", 51), 50, strings.Repeat("ä", 50) + "..."},
		{"empty", "", 50, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestRenderCreatedUserShowsAllFields(t *testing.T) {
	out := renderCreatedUser(&api.CreatedUser{
		ID:        "u-1",
		Email:     "jane@example.com",
		Name:      "Jane Doe",
		Token:     "tok-abc123",
		ExpiresAt: "2026-08-30T12:00:00Z",
	})

	for _, want := range []string{"u-1", "jane@example.com", "Jane Doe", "tok-abc123", "2026-08-30T12:00:00Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderCreatedUser output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderUserShowsAllFields(t *testing.T) {
	out := renderUser(&api.User{
		ID:           "u-2",
		Email:        "joe@example.com",
		Name:         "Joe",
		TokenValid:   true,
		TokenExpires: "2026-09-01T00:00:00Z",
		HistoryCount: 7,
		CreatedAt:    "2026-01-01T00:00:00Z",
		UpdatedAt:    "2026-08-01T00:00:00Z",
	})

	for _, want := range []string{"u-2", "joe@example.com", "Joe", "yes", "2026-09-01 00:00:00", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderUser output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	long := strings.Repeat("x", 60)
	out := renderHistory(&api.HistoryPage{
		History: []api.QAEntry{
			{Question: "Short question", Answer: long, Timestamp: "2026-08-29T10:00:00Z"},
			{Question: "Another", Answer: "Fine", Timestamp: "not-a-timestamp"},
		},
		TotalCount: 2,
	})

	if !strings.Contains(out, "Short question") {
		t.Errorf("short question should appear in full:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("x", 50)+"...") {
		t.Errorf("long answer should be cut at 50 runes with ellipsis:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("x", 51)) {
		t.Errorf("long answer must not appear beyond the cut:\n%s", out)
	}
	if !strings.Contains(out, "2026-08-29 10:00:00") {
		t.Errorf("valid timestamp should be reformatted:\n%s", out)
	}
	if !strings.Contains(out, "not-a-timestamp") {
		t.Errorf("unparseable timestamp should pass through raw:\n%s", out)
	}
	if !strings.Contains(out, "(2 items)") {
		t.Errorf("total count should be shown:\n%s", out)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	out := renderHistory(&api.HistoryPage{})
	if !strings.Contains(out, "empty") {
		t.Errorf("empty history should say so, got:\n%s", out)
	}
}

func TestRenderUserList(t *testing.T) {
	out := renderUserList(&api.UserPage{
		Users: []api.User{
			{ID: "u-1", Name: "Jane", Email: "jane@example.com", HistoryCount: 3},
		},
		TotalCount: 12,
	})
	for _, want := range []string{"u-1", "Jane", "jane@example.com", "12"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderUserList output missing %q:\n%s", want, out)
		}
	}

	if got := renderUserList(&api.UserPage{}); !strings.Contains(got, "No users") {
		t.Errorf("empty list should say no users, got %q", got)
	}
}
