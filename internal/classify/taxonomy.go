package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/claimtriage/internal/model"
)

// PhraseGroup maps case-insensitive substring phrases to a PV sub-team.
// Notes phrases match against claim notes, Edits phrases against claim edits.
type PhraseGroup struct {
	SubTeam model.SubTeam `yaml:"sub_team"`
	Notes   []string      `yaml:"notes"`
	Edits   []string      `yaml:"edits"`
}

// Taxonomy is a prioritized list of phrase groups; the first matching group
// wins, so ordering is semantic.
type Taxonomy []PhraseGroup

// DefaultTaxonomy is the built-in PV sub-team categorization. The phrase
// lists are domain content supplied by the claims operations group, not
// derived logic.
var DefaultTaxonomy = Taxonomy{
	{
		SubTeam: model.SubTeamProviderVendor,
		Notes: []string{
			"NEEDS RENDERING AND PAY-TO PROVIDER ADDED",
			"NEEDS VENDOR ADDED",
			"NEEDS VENDOR AND RENDERING ADDED",
			"NEEDS RENDERING ADDED",
			"NO RENDERING ADDED",
			"RENDER PHY NEEDS TO BE ADDED",
			"REQUESTED CLAIM CAN NOT BE MOVED TO PREBATCH WITH NON-VALIDATED VENDOR INFO",
		},
		Edits: []string{
			"RENDERING PROVIDER DOES NOT EXIST IN PV",
		},
	},
	{
		SubTeam: model.SubTeamW9Validation,
		Notes: []string{
			"MISSING W9. REQUESTED",
			"PROVIDER NOT VALIDATED",
			"VENDORS ZIP CODE DOESN'T MATCH",
			"COB ON FILE",
		},
	},
	{
		SubTeam: model.SubTeamContract,
		Notes: []string{
			"PROVIDER DOESN'T HAVE A CONTRACT FOR DOS SUBMITTED",
			"ERROR: NO ACTIVE CONTRACTS FOUND FOR THIS DOS",
			"MULTIPLE NETWORK AFFILIATIONS ARE IDENTIFIED",
			"AUTH_CHECK_OUT OF NETWORK PROVIDER",
		},
		Edits: []string{
			"NO ACTIVE CONTRACTS FOUND FOR THIS DOS",
			"NO MATCHING CONTRACT FOUND",
		},
	},
	{
		SubTeam: model.SubTeamPayTo,
		Notes: []string{
			"PAY TO PROVIDER DETAILS DOES NOT MATCH WITH THE CONTRACT",
			"ERROR: PAY TO PROVIDER DETAILS DOES NOT MATCH WITH THE CONTRACT",
		},
	},
	{
		SubTeam: model.SubTeamPricing,
		Notes: []string{
			"PART B EMERGENCY CLAIM TO BE PRICED AT LINE LEVEL",
			"PART B OUTPATIENT CLAIM TO BE PRICED AT LINE LEVEL",
			"PART A INPATIENT CLAIM TO BE PRICED AT CLAIM LEVEL",
			"PART B INPATIENT CLAIM TO BE PRICED AT CLAIM LEVEL",
			"VALIDATE THE ADJUDICATORS INSTRUCTIONS",
			"NO BENEFIT RULE HITS",
			"STILL ON HOLD. CONTRACT REQUESTED",
			"TMS CLAIMS MOVED TO ON HOLD WITH CPT",
		},
		Edits: []string{
			"PBP NOT FOUND FOR MEMBER",
		},
	},
}

// LoadTaxonomy reads a YAML phrase-group list, replacing the default
// taxonomy. Group order in the file is the match priority.
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}
	if err := tax.validate(); err != nil {
		return nil, err
	}
	return tax, nil
}

func (t Taxonomy) validate() error {
	if len(t) == 0 {
		return fmt.Errorf("taxonomy has no phrase groups")
	}
	for i, g := range t {
		if g.SubTeam == "" {
			return fmt.Errorf("taxonomy group %d has no sub_team", i)
		}
		if len(g.Notes) == 0 && len(g.Edits) == 0 {
			return fmt.Errorf("taxonomy group %d (%s) has no phrases", i, g.SubTeam)
		}
	}
	return nil
}
