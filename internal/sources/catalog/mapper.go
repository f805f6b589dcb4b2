package catalog

import (
	"fmt"
	"strings"

	"github.com/grantboard/grantboard/internal/domain"
)

// Mapper converts raw catalog entries to domain.Grant entities.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapGrants converts a parsed catalog file to []domain.Grant, keeping
// file order. Entries without an id or title are skipped; duplicate
// ids keep the first occurrence; negative amounts are clamped to zero.
// Deadlines are carried verbatim; malformed values are a query-time
// boundary case, not a load error.
func (m *Mapper) MapGrants(file File) ([]*domain.Grant, error) {
	seen := make(map[string]bool, len(file.Grants))
	grants := make([]*domain.Grant, 0, len(file.Grants))

	for _, entry := range file.Grants {
		id := strings.TrimSpace(entry.ID)
		title := strings.TrimSpace(entry.Title)
		if id == "" || title == "" {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		amount := entry.Amount
		if amount < 0 {
			amount = 0
		}

		grants = append(grants, &domain.Grant{
			ID:              id,
			Title:           title,
			Description:     entry.Description,
			Category:        entry.Category,
			FundingSource:   entry.FundingSource,
			ApplicationLink: entry.ApplicationLink,
			Amount:          amount,
			Deadline:        entry.Deadline,
			Eligibility:     entry.Eligibility,
		})
	}

	if len(grants) == 0 {
		return nil, fmt.Errorf("no valid grants found in catalog file")
	}

	return grants, nil
}
