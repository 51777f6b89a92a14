package models

const (
	// SkillNone is what 104 shows when a posting lists no required tools
	SkillNone = "不拘"

	// PreviewMarker is appended to every description preview
	PreviewMarker = "..."
)

// Listing represents one normalized job record from a 104 search page
type Listing struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	RegionText         string   `json:"region_text"`
	RegionCode         string   `json:"region_code"`
	SalaryText         string   `json:"salary_text"`
	SalaryEstimate     *float64 `json:"salary_estimate"`
	EducationText      string   `json:"education_text"`
	ExperienceText     string   `json:"experience_text"`
	SkillsText         string   `json:"skills_text"`
	DescriptionPreview string   `json:"description_preview"`
	URL                string   `json:"url"`
}

// HasSalary reports whether the listing carries a monthly salary estimate
func (l Listing) HasSalary() bool {
	return l.SalaryEstimate != nil
}
