package catalog

// File represents the top-level structure of grants.yaml.
type File struct {
	Grants []GrantEntry `yaml:"grants"`
}

// GrantEntry contains the raw grant properties as written in the
// catalog file, before validation and mapping.
type GrantEntry struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description,omitempty"`
	Category        string   `yaml:"category,omitempty"`
	FundingSource   string   `yaml:"fundingSource,omitempty"`
	ApplicationLink string   `yaml:"applicationLink,omitempty"`
	Amount          float64  `yaml:"amount,omitempty"`
	Deadline        string   `yaml:"deadline,omitempty"`
	Eligibility     []string `yaml:"eligibility,omitempty"`
}
