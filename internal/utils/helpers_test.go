package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/EduCatCode/104-test/internal/models"
)

func TestJoinAndSplitSkills(t *testing.T) {
	joined := JoinSkills([]string{"Python", "SQL"})
	assert.Equal(t, "Python,SQL", joined)
	assert.Equal(t, []string{"Python", "SQL"}, SplitSkills(joined))

	none := JoinSkills(nil)
	assert.Equal(t, models.SkillNone, none)
	assert.Empty(t, SplitSkills(none))
	assert.Empty(t, SplitSkills(""))
}

func TestSplitSkillsKeepsTokensAsIs(t *testing.T) {
	got := SplitSkills("Python, SQL,Python")
	assert.Equal(t, []string{"Python", " SQL", "Python"}, got)
}

func TestRegionCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"台北市信義區", "台北市"},
		{"新北市", "新北市"},
		{"台中", "台中"},
		{"", ""},
		{"Tokyo, Japan", "Tok"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := RegionCode(tt.input)
			assert.Equal(t, tt.want, got)
			if utf8.RuneCountInString(tt.input) >= 3 {
				assert.Equal(t, 3, utf8.RuneCountInString(got))
			}
		})
	}
}

func TestDescriptionPreview(t *testing.T) {
	long := strings.Repeat("資", 150)
	got := DescriptionPreview(long)
	assert.True(t, strings.HasSuffix(got, models.PreviewMarker))
	assert.Equal(t, 100, utf8.RuneCountInString(strings.TrimSuffix(got, models.PreviewMarker)))

	short := "負責資料分析"
	assert.Equal(t, short+models.PreviewMarker, DescriptionPreview(short))
	assert.Equal(t, models.PreviewMarker, DescriptionPreview(""))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abc", 5))
	assert.Equal(t, "ab...", TruncateString("abcdefgh", 5))
	assert.Equal(t, "數據分...", TruncateString("數據分析工程師", 6))
}
