package export

import (
	"strings"
	"testing"

	"github.com/grantboard/grantboard/internal/domain"
)

func TestWriteReport(t *testing.T) {
	var buf strings.Builder
	statuses := map[string]domain.ApplicationStatus{
		"g1": domain.StatusApplied,
	}

	if err := WriteReport(&buf, exportGrants(), statuses); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "GRANT FINDER - EXPORTED GRANTS\n\n") {
		t.Errorf("missing report title, got:\n%s", out[:60])
	}

	for _, want := range []string{
		"Total grants: 2\n",
		"Applied: 1\n",
		"Not Started: 1\n",
		"GRANT #1: STEM Education Grant\n",
		"Amount: $15,000\n",
		"Status: Applied\n",
		"Eligibility: Public schools, Grades 6-12\n",
		"GRANT #2: Arts \"Creative\" Fund\n",
		"Amount: $7,500.5\n",
		"Status: Not Started\n",
		"Deadline: rolling\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	if got := strings.Count(out, "---------------------------------------------"); got != 2 {
		t.Errorf("expected 2 separators, got %d", got)
	}
}

func TestFormatAmountGrouped(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{50000, "$50,000"},
		{1234567, "$1,234,567"},
		{7500.5, "$7,500.5"},
	}

	for _, tt := range tests {
		if got := formatAmountGrouped(tt.in); got != tt.want {
			t.Errorf("formatAmountGrouped(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
