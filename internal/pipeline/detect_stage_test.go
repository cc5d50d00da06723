package pipeline

import (
	"context"
	"errors"
	"testing"
)

func TestDetectStageReturnsType(t *testing.T) {
	blobs := newFakeBlobs()
	extractor := &fakeExtractor{text: "employment agreement text"}
	analyzer := &fakeAnalyzer{detectType: "Employment"}

	stage := NewDetectStage(blobs, extractor, analyzer, nil)
	got, err := stage.Run(context.Background(), testUser(false), []byte("%PDF"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "Employment" {
		t.Errorf("type = %q, want Employment", got)
	}
	if len(blobs.deleted) != 1 {
		t.Errorf("staged blob not cleaned up: %v", blobs.deleted)
	}
}

func TestDetectStagePropagatesClassifierError(t *testing.T) {
	blobs := newFakeBlobs()
	analyzer := &fakeAnalyzer{detectErr: errors.New("quota exceeded")}

	stage := NewDetectStage(blobs, &fakeExtractor{text: "text"}, analyzer, nil)
	if _, err := stage.Run(context.Background(), testUser(false), []byte("%PDF")); err == nil {
		t.Fatal("expected classifier error")
	}
	if len(blobs.deleted) != 1 {
		t.Errorf("staged blob not cleaned up after failure: %v", blobs.deleted)
	}
}

func TestDetectStageCleansUpOnExtractFailure(t *testing.T) {
	blobs := newFakeBlobs()
	extractor := &fakeExtractor{err: errors.New("malformed pdf")}

	stage := NewDetectStage(blobs, extractor, &fakeAnalyzer{}, nil)
	if _, err := stage.Run(context.Background(), testUser(false), []byte("junk")); err == nil {
		t.Fatal("expected extract error")
	}
	if len(blobs.deleted) != 1 {
		t.Errorf("staged blob not cleaned up after failure: %v", blobs.deleted)
	}
}
