package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EduCatCode/104-test/internal/models"
)

func salary(v float64) *float64 { return &v }

func listing(region, skills string, estimate *float64) models.Listing {
	return models.Listing{RegionCode: region, SkillsText: skills, SalaryEstimate: estimate}
}

func TestBuildEmpty(t *testing.T) {
	r, err := Build(nil, Options{})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, r)
}

func TestBuild(t *testing.T) {
	listings := []models.Listing{
		listing("新北市", "Python,SQL", salary(40000)),
		listing("台北市", "Python", salary(60000)),
		listing("台北市", models.SkillNone, nil),
		listing("新北市", "Excel,Python", nil),
		listing("台中市", "", salary(50000)),
	}

	r, err := Build(listings, Options{Bins: 2, TopSkills: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, r.Total)
	assert.Equal(t, 3, r.WithSalary)
	require.NotNil(t, r.AverageSalary)
	assert.Equal(t, 50000.0, *r.AverageSalary)

	assert.Equal(t, "新北市", r.TopRegion, "ties keep first-seen order")
	assert.Equal(t, []Count{{"新北市", 2}, {"台北市", 2}, {"台中市", 1}}, r.Regions)
	assert.Equal(t, []Count{{"Python", 3}, {"SQL", 1}}, r.TopSkills)

	require.Len(t, r.SalaryHistogram, 2)
	assert.Equal(t, Bin{Low: 40000, High: 50000, Count: 1}, r.SalaryHistogram[0])
	assert.Equal(t, Bin{Low: 50000, High: 60000, Count: 2}, r.SalaryHistogram[1])
}

func TestBuildWithoutSalaries(t *testing.T) {
	r, err := Build([]models.Listing{listing("台北市", "Go", nil)}, Options{})
	require.NoError(t, err)
	assert.Nil(t, r.AverageSalary)
	assert.Empty(t, r.SalaryHistogram)
	assert.Equal(t, 0, r.WithSalary)
}

func TestHistogram(t *testing.T) {
	assert.Nil(t, Histogram(nil, 20))

	single := Histogram([]float64{35000, 35000}, 20)
	assert.Equal(t, []Bin{{Low: 35000, High: 35000, Count: 2}}, single)

	hist := Histogram([]float64{0, 10, 20, 30, 40}, 4)
	require.Len(t, hist, 4)
	counts := make([]int, 0, 4)
	total := 0
	for _, b := range hist {
		counts = append(counts, b.Count)
		total += b.Count
	}
	assert.Equal(t, []int{1, 1, 1, 2}, counts)
	assert.Equal(t, 5, total)
	assert.Equal(t, 40.0, hist[3].High)
}

func TestTopSkillsDefaultLimit(t *testing.T) {
	var listings []models.Listing
	for i := 0; i < 30; i++ {
		listings = append(listings, listing("台北市", string(rune('A'+i)), nil))
	}
	r, err := Build(listings, Options{})
	require.NoError(t, err)
	assert.Len(t, r.TopSkills, DefaultTopSkills)
}
