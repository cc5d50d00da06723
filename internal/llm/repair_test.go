package llm

import (
	"encoding/json"
	"testing"
)

func TestRepairJSONStripsCodeFences(t *testing.T) {
	in := "```json\n{\"summary\": \"ok\"}\n```"
	got := RepairJSON(in)
	want := `{"summary": "ok"}`
	if got != want {
		t.Errorf("RepairJSON(%q) = %q, want %q", in, got, want)
	}
}

func TestRepairJSONQuotesBareKeys(t *testing.T) {
	in := `{summary: "ok", overallScore: 75}`
	got := RepairJSON(in)

	var m map[string]any
	if err := json.Unmarshal([]byte(got), &m); err != nil {
		t.Fatalf("repaired output is not valid JSON: %v\n%s", err, got)
	}
	if m["summary"] != "ok" {
		t.Errorf("summary = %v, want ok", m["summary"])
	}
	if m["overallScore"] != float64(75) {
		t.Errorf("overallScore = %v, want 75", m["overallScore"])
	}
}

func TestRepairJSONRemovesTrailingCommas(t *testing.T) {
	in := `{"summary": "ok", }`
	got := RepairJSON(in)

	var m map[string]any
	if err := json.Unmarshal([]byte(got), &m); err != nil {
		t.Fatalf("repaired output is not valid JSON: %v\n%s", err, got)
	}
}

func TestRepairJSONNestedBareKeys(t *testing.T) {
	in := "```json\n" + `{risks: [{risk: "Non-compete", explanation: "Restricts movement", severity: "high"}]}` + "\n```"
	got := RepairJSON(in)

	var m map[string]any
	if err := json.Unmarshal([]byte(got), &m); err != nil {
		t.Fatalf("repaired output is not valid JSON: %v\n%s", err, got)
	}
	risks, ok := m["risks"].([]any)
	if !ok || len(risks) != 1 {
		t.Fatalf("risks = %v, want one element", m["risks"])
	}
}

func TestRepairJSONLeavesGarbageUnparseable(t *testing.T) {
	in := "The contract looks fine to me."
	got := RepairJSON(in)

	var m map[string]any
	if err := json.Unmarshal([]byte(got), &m); err == nil {
		t.Errorf("expected prose to remain unparseable, got %v", m)
	}
}

func TestStripCodeFences(t *testing.T) {
	in := "```json\nhello\n```"
	if got := StripCodeFences(in); got != "hello" {
		t.Errorf("StripCodeFences(%q) = %q, want hello", in, got)
	}
}
