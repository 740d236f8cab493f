package helper

import "testing"

func TestSizeInMB(t *testing.T) {
	cases := []struct {
		name string
		size int64
		want float64
	}{
		{"exact megabytes", 5 * 1024 * 1024, 5},
		{"half megabyte", 1536 * 1024, 1.5},
		{"rounds to two decimals", 1048576 + 5243, 1.01},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SizeInMB(tc.size)
			if got != tc.want {
				t.Fatalf("SizeInMB(%d) = %v, want %v", tc.size, got, tc.want)
			}
		})
	}
}

func TestFilenameFromURL(t *testing.T) {
	cases := []struct {
		name   string
		rawURL string
		want   string
	}{
		{"last path segment", "https://example.com/files/a.png", "a.png"},
		{"query string ignored", "https://example.com/a.png?size=large", "a.png"},
		{"no path", "https://example.com", "download"},
		{"trailing slash", "https://example.com/files/", "download"},
		{"root path", "https://example.com/", "download"},
		{"unparseable", "://bad", "download"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilenameFromURL(tc.rawURL, "download")
			if got != tc.want {
				t.Fatalf("FilenameFromURL(%q) = %q, want %q", tc.rawURL, got, tc.want)
			}
		})
	}
}
