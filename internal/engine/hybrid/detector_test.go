package hybrid

import "testing"

func TestNeedsJavaScript(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		scriptCount int
		want        bool
	}{
		{"plain static page", "<html><body><div></div><div></div><div></div><p>hi</p></body></html>", 0, false},
		{"many scripts", "<html><div></div><div></div><div></div></html>", 6, true},
		{"react app", `<html><div id="root"></div><div></div><div></div><script src="/static/js/_react.js"></script></html>`, 1, true},
		{"spa shell", "<html><body><div id=\"app\"></div><script></script></body></html>", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsJavaScript(tt.html, tt.scriptCount); got != tt.want {
				t.Errorf("NeedsJavaScript = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectJavaScriptFramework(t *testing.T) {
	if got := DetectJavaScriptFramework("<script>window._reactRoot = 1;</script>"); got != "React" {
		t.Errorf("expected React, got %q", got)
	}
	if got := DetectJavaScriptFramework("<html><body>static</body></html>"); got != "Unknown" {
		t.Errorf("expected Unknown, got %q", got)
	}
}
