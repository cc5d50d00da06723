package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/contractwise/backend/internal/cache"
)

type fakeBlobs struct {
	data map[string][]byte
	err  error
}

func (f *fakeBlobs) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeBlobs) Get(ctx context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.data[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return b, nil
}

func (f *fakeBlobs) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func TestExtractMissingStagedFile(t *testing.T) {
	e := NewPDFExtractor(&fakeBlobs{data: map[string][]byte{}}, nil)

	_, err := e.Extract(context.Background(), "file:u:1")
	if !errors.Is(err, ErrNotStaged) {
		t.Errorf("err = %v, want ErrNotStaged", err)
	}
}

func TestExtractPropagatesCacheError(t *testing.T) {
	boom := errors.New("connection refused")
	e := NewPDFExtractor(&fakeBlobs{err: boom}, nil)

	_, err := e.Extract(context.Background(), "file:u:1")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want the cache error", err)
	}
}

func TestExtractRejectsNonPDFBytes(t *testing.T) {
	blobs := &fakeBlobs{data: map[string][]byte{
		"file:u:1": []byte("this is not a pdf at all"),
	}}
	e := NewPDFExtractor(blobs, nil)

	_, err := e.Extract(context.Background(), "file:u:1")
	if err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
	if !strings.Contains(err.Error(), "failed to extract text") {
		t.Errorf("err = %v", err)
	}
}

func TestExtractRejectsTruncatedPDF(t *testing.T) {
	blobs := &fakeBlobs{data: map[string][]byte{
		"file:u:1": []byte("%PDF-1.4\ntruncated"),
	}}
	e := NewPDFExtractor(blobs, nil)

	if _, err := e.Extract(context.Background(), "file:u:1"); err == nil {
		t.Fatal("expected error for truncated PDF")
	}
}
