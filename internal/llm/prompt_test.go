package llm

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/contractwise/backend/constants"
)

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	// The three-byte rune straddles the cut point; the cut must back off to
	// the rune start rather than emit a partial encoding.
	s := strings.Repeat("a", 999) + "日本"
	got := truncate(s, 1000)

	if got != strings.Repeat("a", 999) {
		t.Errorf("truncate length = %d, want 999", len(got))
	}
	if !utf8.ValidString(got) {
		t.Error("truncated string is not valid UTF-8")
	}

	if got := truncate("short", 1000); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
}

func TestBuildDetectPromptValidUTF8(t *testing.T) {
	text := strings.Repeat("契約", constants.DetectPromptTextLimit)
	if !utf8.ValidString(BuildDetectPrompt(text)) {
		t.Error("detect prompt contains invalid UTF-8")
	}
}

func TestBuildDetectPromptTruncates(t *testing.T) {
	text := strings.Repeat("a", 2500)
	prompt := BuildDetectPrompt(text)

	if !strings.Contains(prompt, strings.Repeat("a", constants.DetectPromptTextLimit)) {
		t.Error("prompt missing the embedded contract text")
	}
	if strings.Contains(prompt, strings.Repeat("a", constants.DetectPromptTextLimit+1)) {
		t.Error("prompt embeds more than the detect limit")
	}
}

func TestBuildAnalysisPromptFreeTruncates(t *testing.T) {
	req := AnalyzeRequest{
		ContractText: strings.Repeat("b", 1500),
		ContractType: "Lease",
		Tier:         constants.TierFree,
	}
	prompt := BuildAnalysisPrompt(req, "m", time.Now())

	if strings.Contains(prompt, strings.Repeat("b", constants.AnalysisTextEchoLimit+1)) {
		t.Error("free prompt embeds more than the echo limit")
	}
	if strings.Contains(prompt, "keyClauses") {
		t.Error("free prompt requests premium fields")
	}
}

func TestBuildAnalysisPromptPremiumEmbedsFullText(t *testing.T) {
	full := strings.Repeat("c", 1500)
	req := AnalyzeRequest{
		ContractText: full,
		ContractType: "Employment",
		Tier:         constants.TierPremium,
	}
	prompt := BuildAnalysisPrompt(req, "gemini-1.5-flash", time.Now())

	if !strings.Contains(prompt, full) {
		t.Error("premium prompt must embed the full contract text")
	}
	for _, field := range []string{"keyClauses", "compensationStructure", "financialTerms", "intellectualPropertyClauses"} {
		if !strings.Contains(prompt, field) {
			t.Errorf("premium prompt missing field %q", field)
		}
	}
	if !strings.Contains(prompt, "gemini-1.5-flash") {
		t.Error("premium prompt missing the model name")
	}
}
