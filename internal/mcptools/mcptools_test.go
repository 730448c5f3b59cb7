package mcptools

import (
	"testing"

	supadata "github.com/supadata-ai/supadata-go"
)

func TestVideoRefFromInput(t *testing.T) {
	ref, err := videoRefFromInput("abc123", "")
	if err != nil {
		t.Fatalf("videoRefFromInput(id): %v", err)
	}
	if _, ok := ref.(supadata.VideoID); !ok {
		t.Errorf("got %T, want VideoID", ref)
	}

	ref, err = videoRefFromInput("", "https://youtu.be/abc123")
	if err != nil {
		t.Fatalf("videoRefFromInput(url): %v", err)
	}
	if _, ok := ref.(supadata.VideoURL); !ok {
		t.Errorf("got %T, want VideoURL", ref)
	}
}

func TestVideoRefFromInputRejectsBadPairs(t *testing.T) {
	if _, err := videoRefFromInput("", ""); err == nil {
		t.Error("expected error when neither videoId nor url is set")
	}
	if _, err := videoRefFromInput("abc123", "https://youtu.be/abc123"); err == nil {
		t.Error("expected error when both videoId and url are set")
	}
}
