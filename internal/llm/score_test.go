package llm

import (
	"testing"

	"github.com/contractwise/backend/internal/entity"
)

func TestComputeOverallScore(t *testing.T) {
	tests := []struct {
		name          string
		risks         []entity.Risk
		opportunities []entity.Opportunity
		want          int
	}{
		{
			name: "no findings keeps baseline",
			want: 50,
		},
		{
			name:  "high risk subtracts twenty",
			risks: []entity.Risk{{Severity: "high"}},
			want:  30,
		},
		{
			name:  "medium risk subtracts ten",
			risks: []entity.Risk{{Severity: "medium"}},
			want:  40,
		},
		{
			name:  "unknown severity counts as low",
			risks: []entity.Risk{{Severity: "whatever"}},
			want:  45,
		},
		{
			name:          "high impact opportunity adds twenty",
			opportunities: []entity.Opportunity{{Impact: "high"}},
			want:          70,
		},
		{
			name: "mixed findings combine",
			risks: []entity.Risk{
				{Severity: "high"},
				{Severity: "low"},
			},
			opportunities: []entity.Opportunity{{Impact: "medium"}},
			want:          35,
		},
		{
			name: "score clamps at zero",
			risks: []entity.Risk{
				{Severity: "high"}, {Severity: "high"}, {Severity: "high"},
			},
			want: 0,
		},
		{
			name: "score clamps at hundred",
			opportunities: []entity.Opportunity{
				{Impact: "high"}, {Impact: "high"}, {Impact: "high"},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOverallScore(tt.risks, tt.opportunities)
			if got != tt.want {
				t.Errorf("ComputeOverallScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
