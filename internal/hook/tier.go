package hook

import "fmt"

// Tier is the priority bucket a hook belongs to.
type Tier string

const (
	Tier1 Tier = "tier1" // critical: security and validation
	Tier2 Tier = "tier2" // important: quality and standards
	Tier3 Tier = "tier3" // optional: convenience and notifications
	Utils Tier = "utils" // shared utility code used by other hooks
)

// Tiers lists all tiers in priority order.
var Tiers = []Tier{Tier1, Tier2, Tier3, Utils}

// ParseTier converts a string to a Tier.
// Returns an error for anything outside the four known tiers.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown tier %q (valid: tier1, tier2, tier3, utils)", s)
	}
	return t, nil
}

// IsValid reports whether t is one of the four known tiers.
func (t Tier) IsValid() bool {
	switch t {
	case Tier1, Tier2, Tier3, Utils:
		return true
	}
	return false
}

// Description returns the human-readable tier description used in
// READMEs and the distribution manifest.
func (t Tier) Description() string {
	switch t {
	case Tier1:
		return "Critical hooks - security, validation and enforcement. Install these first."
	case Tier2:
		return "Important hooks - code quality, standards checking and linting."
	case Tier3:
		return "Optional hooks - notifications, tracking and convenience features."
	case Utils:
		return "Shared utility modules imported by hooks in other tiers."
	}
	return ""
}

// Importance is the install priority derived from a hook's tier.
type Importance string

const (
	Critical  Importance = "critical"
	Important Importance = "important"
	Optional  Importance = "optional"
	Utility   Importance = "utility"
)

// ImportanceForTier maps a tier to its importance. Total over valid tiers.
func ImportanceForTier(t Tier) Importance {
	switch t {
	case Tier1:
		return Critical
	case Tier2:
		return Important
	case Utils:
		return Utility
	}
	return Optional
}

// Rank returns the sort rank used when ordering selected hooks.
// Lower ranks install first.
func (i Importance) Rank() int {
	switch i {
	case Critical:
		return 0
	case Important:
		return 1
	case Optional:
		return 2
	}
	return 3
}

// Level returns the filtering level used for min-importance thresholds:
// utility 0, optional 1, important 2, critical 3.
func (i Importance) Level() int {
	switch i {
	case Critical:
		return 3
	case Important:
		return 2
	case Optional:
		return 1
	}
	return 0
}

// ParseImportance converts a string to an Importance.
func ParseImportance(s string) (Importance, error) {
	i := Importance(s)
	switch i {
	case Critical, Important, Optional, Utility:
		return i, nil
	}
	return "", fmt.Errorf("unknown importance %q (valid: critical, important, optional, utility)", s)
}
