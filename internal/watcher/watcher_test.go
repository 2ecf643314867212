package watcher

import (
	"context"
	"testing"
	"time"
)

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/videos/interview.mp4", true},
		{"/videos/interview.MOV", true},
		{"/videos/interview.avi", true},
		{"/videos/interview.mkv", false},
		{"/videos/interview.srt", false},
		{"/videos/noext", false},
	}
	for _, tt := range tests {
		if got := isVideoFile(tt.path); got != tt.want {
			t.Errorf("isVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSemaphoreLimit(t *testing.T) {
	sem := newSemaphore(1)
	if err := sem.acquire(context.Background()); err != nil {
		t.Fatalf("acquire() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := sem.acquire(ctx); err == nil {
		t.Error("acquire() should block until release when the limit is reached")
		sem.release()
	}

	sem.release()
	if err := sem.acquire(context.Background()); err != nil {
		t.Errorf("acquire() after release error = %v", err)
	}
}
