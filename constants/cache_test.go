package constants

import (
	"testing"
	"time"
)

func TestStagedFileKey(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	got := StagedFileKey("user-1", ts)
	want := "file:user-1:1700000000123"
	if got != want {
		t.Errorf("StagedFileKey = %q, want %q", got, want)
	}
}

func TestContractRecordKey(t *testing.T) {
	got := ContractRecordKey("abc")
	if got != "contract:abc" {
		t.Errorf("ContractRecordKey = %q", got)
	}
}

func TestIsPDFContentType(t *testing.T) {
	tests := []struct {
		contentType string
		filename    string
		want        bool
	}{
		{"application/pdf", "contract.pdf", true},
		{"application/octet-stream", "contract.pdf", true},
		{"application/octet-stream", "CONTRACT.PDF", true},
		{"application/octet-stream", "contract.docx", false},
		{"text/plain", "notes.txt", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := IsPDFContentType(tt.contentType, tt.filename); got != tt.want {
			t.Errorf("IsPDFContentType(%q, %q) = %v, want %v", tt.contentType, tt.filename, got, tt.want)
		}
	}
}
