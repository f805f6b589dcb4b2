package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grantboard/grantboard/internal/domain"
)

const (
	reportTitle     = "GRANT FINDER - EXPORTED GRANTS"
	reportSeparator = "---------------------------------------------"
)

// WriteReport writes a plain-text report: a status summary followed by
// one detail section per grant, in the order given.
func WriteReport(w io.Writer, grants []*domain.Grant, statuses map[string]domain.ApplicationStatus) error {
	var sb strings.Builder

	sb.WriteString(reportTitle)
	sb.WriteString("\n\n")

	writeStatusSummary(&sb, grants, statuses)

	for i, g := range grants {
		writeGrantSection(&sb, i+1, g, domain.ResolveStatus(statuses, g.ID))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeStatusSummary(sb *strings.Builder, grants []*domain.Grant, statuses map[string]domain.ApplicationStatus) {
	counts := make(map[domain.ApplicationStatus]int, len(domain.AllStatuses))
	for _, g := range grants {
		counts[domain.ResolveStatus(statuses, g.ID)]++
	}

	fmt.Fprintf(sb, "Total grants: %d\n", len(grants))
	for _, status := range domain.AllStatuses {
		if counts[status] == 0 {
			continue
		}
		fmt.Fprintf(sb, "%s: %d\n", status, counts[status])
	}
	sb.WriteString("\n")
}

func writeGrantSection(sb *strings.Builder, n int, g *domain.Grant, status domain.ApplicationStatus) {
	fmt.Fprintf(sb, "GRANT #%d: %s\n", n, g.Title)
	fmt.Fprintf(sb, "Category: %s\n", g.Category)
	fmt.Fprintf(sb, "Amount: %s\n", formatAmountGrouped(g.Amount))
	fmt.Fprintf(sb, "Deadline: %s\n", g.Deadline)
	fmt.Fprintf(sb, "Status: %s\n", status)
	fmt.Fprintf(sb, "Funding Source: %s\n", g.FundingSource)
	fmt.Fprintf(sb, "Description: %s\n", g.Description)
	fmt.Fprintf(sb, "Eligibility: %s\n", strings.Join(g.Eligibility, ", "))
	fmt.Fprintf(sb, "Application Link: %s\n\n", g.ApplicationLink)
	sb.WriteString(reportSeparator)
	sb.WriteString("\n\n")
}

// formatAmountGrouped renders an amount with thousands separators,
// e.g. 50000 -> "$50,000".
func formatAmountGrouped(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	return sign + "$" + sb.String() + fracPart
}
