package headers

import "testing"

func TestParse(t *testing.T) {
	got := Parse([]string{
		"User-Agent: contactscan-test",
		"Authorization:Bearer token",
		"malformed-no-colon",
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 headers, got %d: %v", len(got), got)
	}
	if got["User-Agent"] != "contactscan-test" {
		t.Errorf("User-Agent = %q", got["User-Agent"])
	}
	if got["Authorization"] != "Bearer token" {
		t.Errorf("Authorization = %q", got["Authorization"])
	}
}
