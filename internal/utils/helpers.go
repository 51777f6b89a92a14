package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/EduCatCode/104-test/internal/models"
)

const (
	regionCodeLength = 3
	previewLength    = 100
)

// JoinSkills builds the skills column from the specialty descriptors of a posting
func JoinSkills(skills []string) string {
	if len(skills) == 0 {
		return models.SkillNone
	}
	return strings.Join(skills, ",")
}

// SplitSkills returns the individual skill tokens of a skills column.
// Tokens are neither trimmed nor deduplicated.
func SplitSkills(skillsText string) []string {
	if skillsText == "" || skillsText == models.SkillNone {
		return nil
	}
	return strings.Split(skillsText, ",")
}

// RegionCode returns the first three characters of a 104 address, which for
// most postings is the city or county ("台北市信義區" -> "台北市").
// Addresses such as "新竹縣竹北市" work, foreign ones generally do not.
func RegionCode(regionText string) string {
	return truncateRunes(regionText, regionCodeLength)
}

// DescriptionPreview keeps the first 100 characters of a description and
// always appends the marker, even when nothing was cut.
func DescriptionPreview(description string) string {
	return truncateRunes(description, previewLength) + models.PreviewMarker
}

// TruncateString shortens s to length characters, ending with "..." if it was cut
func TruncateString(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	if length <= 3 {
		return truncateRunes(s, length)
	}
	return truncateRunes(s, length-3) + "..."
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
