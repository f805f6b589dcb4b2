package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grantboard/grantboard/internal/domain"
)

// csvHeader is the fixed column set of a grant export.
var csvHeader = []string{
	"Title",
	"Category",
	"Amount",
	"Deadline",
	"Status",
	"Funding Source",
	"Application Link",
}

// WriteCSV writes the given grants as CSV. Every field is quoted,
// amounts carry a dollar prefix, and the status column reflects the
// resolved application status for each grant.
func WriteCSV(w io.Writer, grants []*domain.Grant, statuses map[string]domain.ApplicationStatus) error {
	if err := writeCSVRow(w, csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, g := range grants {
		row := []string{
			g.Title,
			g.Category,
			formatAmount(g.Amount),
			g.Deadline,
			string(domain.ResolveStatus(statuses, g.ID)),
			g.FundingSource,
			g.ApplicationLink,
		}
		if err := writeCSVRow(w, row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", g.ID, err)
		}
	}

	return nil
}

// writeCSVRow quotes every field unconditionally. encoding/csv only
// quotes when it must, and the export format quotes all fields.
func writeCSVRow(w io.Writer, fields []string) error {
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatAmount(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}
