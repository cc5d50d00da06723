package llm

import (
	"regexp"
	"strings"
)

// Repairs are applied in a fixed order; each is a blind textual rewrite
// tolerant of the sloppy JSON models produce. Reordering them changes the
// output for some inputs, so the order is part of the contract.
var (
	reCodeFence     = regexp.MustCompile("```json\n?|\n?```")
	reBareKey       = regexp.MustCompile(`([{,]\s*)(\w+)(\s*:)`)
	reValueRunOn    = regexp.MustCompile(`:\s*"([^"]*)"([^,}\]])`)
	reTrailingComma = regexp.MustCompile(`,\s*}`)
)

// RepairJSON rewrites near-JSON model output into something the parser has a
// chance with: markdown fences stripped, bare keys quoted, quoted values
// re-terminated, trailing commas removed. It never fails; unparseable input
// comes out rewritten but still unparseable.
func RepairJSON(text string) string {
	t := strings.TrimSpace(reCodeFence.ReplaceAllString(text, ""))
	t = reBareKey.ReplaceAllString(t, `$1"$2"$3`)
	t = reValueRunOn.ReplaceAllString(t, `:"$1"$2`)
	t = reTrailingComma.ReplaceAllString(t, "}")
	return t
}

// StripCodeFences removes markdown fences only. The salvage path works on
// otherwise untouched text.
func StripCodeFences(text string) string {
	return strings.TrimSpace(reCodeFence.ReplaceAllString(text, ""))
}
