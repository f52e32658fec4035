package selection

import (
	"slices"
	"strings"
)

// Recommendations groups missing hooks by how strongly they are needed.
type Recommendations struct {
	Required    []string `json:"required"`
	Recommended []string `json:"recommended"`
	Optional    []string `json:"optional"`
}

// Recommend reports which of a project type's recommended hooks are
// missing from the given existing names. Validator and enforcer hooks
// are always classified as required.
func Recommend(projectType string, existing []string) Recommendations {
	policy := PolicyFor(projectType)
	rec := Recommendations{
		Required:    []string{},
		Recommended: []string{},
		Optional:    []string{},
	}

	for _, name := range policy.RecommendedHooks {
		if slices.Contains(existing, name) {
			continue
		}
		if strings.Contains(name, "validator") || strings.Contains(name, "enforcer") {
			rec.Required = append(rec.Required, name)
		} else {
			rec.Recommended = append(rec.Recommended, name)
		}
	}

	// Monorepos coordinate multiple packages; suggest notifications
	// even though they are not required.
	if projectType == "monorepo" && !slices.Contains(existing, "notification.py") {
		rec.Optional = append(rec.Optional, "notification.py")
	}

	return rec
}
