// Package hook defines the core types for tiered hook management:
// tiers, categories, importance levels and the hook records that flow
// between discovery, categorization, organization and selection.
package hook

import "time"

// Category describes what a hook does, derived from its name alone.
// Independent of tier: a tier3 hook can still be a validation hook.
type Category string

const (
	CategoryValidation   Category = "validation"
	CategoryEnforcement  Category = "enforcement"
	CategoryChecking     Category = "checking"
	CategoryReporting    Category = "reporting"
	CategoryLinting      Category = "linting"
	CategoryOrganization Category = "organization"
	CategoryNotification Category = "notification"
	CategoryLifecycle    Category = "lifecycle"
	CategoryUtility      Category = "utility"
	CategoryGeneral      Category = "general"
)

// File is a discovered hook script with its raw content and metadata.
// Immutable once read from disk.
type File struct {
	Name     string
	Path     string
	Content  []byte
	Size     int64
	Modified time.Time
}

// Categorized is a hook file tagged with its classification.
type Categorized struct {
	File

	Tier        Tier
	Category    Category
	Description string
	Importance  Importance
}

// Record is the persisted form of a categorized hook in the registry.
type Record struct {
	Name         string     `json:"name"`
	Tier         Tier       `json:"tier"`
	Category     Category   `json:"category"`
	Description  string     `json:"description"`
	Importance   Importance `json:"importance"`
	OriginalPath string     `json:"originalPath"`
	CurrentPath  string     `json:"currentPath"`
	Size         int64      `json:"size"`
	Modified     time.Time  `json:"modified"`
}

// Categorize converts a record back into a categorized hook.
// Content is not stored in the registry and stays nil.
func (r Record) Categorize() Categorized {
	return Categorized{
		File: File{
			Name:     r.Name,
			Path:     r.CurrentPath,
			Size:     r.Size,
			Modified: r.Modified,
		},
		Tier:        r.Tier,
		Category:    r.Category,
		Description: r.Description,
		Importance:  r.Importance,
	}
}
