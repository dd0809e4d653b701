package ledger

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateVideoURL(t *testing.T) {
	valid := []string{
		"https://youtube.com/watch?v=abc123",
		"http://vimeo.com/12345",
		"  https://tiktok.com/@user/video/1 ",
	}
	for _, u := range valid {
		if err := validateVideoURL(u); err != nil {
			t.Fatalf("expected %q to validate, got %v", u, err)
		}
	}

	invalid := []string{
		"",
		"ftp://example.com/video",
		"not a url",
		"https://",
		"https://example.com/" + strings.Repeat("a", 500),
	}
	for _, u := range invalid {
		err := validateVideoURL(u)
		if err == nil {
			t.Fatalf("expected %q to be rejected", u)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %q, got %v", u, err)
		}
	}
}
