package core

import "fmt"

// Category is a failure-taxonomy category, A through F.
type Category string

const (
	CategorySafety      Category = "A"
	CategoryInstruction Category = "B"
	CategoryFactuality  Category = "C"
	CategoryGrounding   Category = "D"
	CategoryToolUse     Category = "E"
	CategoryRobustness  Category = "F"
)

// Categories lists all taxonomy categories in catalog order.
var Categories = []Category{
	CategorySafety,
	CategoryInstruction,
	CategoryFactuality,
	CategoryGrounding,
	CategoryToolUse,
	CategoryRobustness,
}

var categoryTitles = map[Category]string{
	CategorySafety:      "Safety & Policy Violations",
	CategoryInstruction: "Instruction Hierarchy & Injection",
	CategoryFactuality:  "Hallucination & Factuality",
	CategoryGrounding:   "Grounding & Citation",
	CategoryToolUse:     "Tool Use & Agentic Behavior",
	CategoryRobustness:  "Robustness & Overrefusal",
}

func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title returns the display name, e.g. "C. Hallucination & Factuality".
func (c Category) Title() string {
	title, ok := categoryTitles[c]
	if !ok {
		return string(c)
	}
	return fmt.Sprintf("%s. %s", string(c), title)
}

// TaxonomyEntry is one named failure mode from the fixed catalog.
type TaxonomyEntry struct {
	ID          int      `json:"id" yaml:"id"`
	Category    Category `json:"category" yaml:"category"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
}
