package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/EduCatCode/104-test/internal/models"
	"github.com/EduCatCode/104-test/internal/report"
	"github.com/EduCatCode/104-test/internal/utils"
)

// RenderNoData tells the user the run produced nothing to analyze
func RenderNoData() {
	pterm.Warning.Println("No listings found. Try another keyword or check your network connection.")
}

// RenderReport prints the summary figures and the three charts
func RenderReport(keyword string, r *report.Report) error {
	pterm.DefaultSection.Printfln("Market overview for %q", keyword)

	avg := "cannot be computed"
	if r.AverageSalary != nil {
		avg = utils.FormatSalary(*r.AverageSalary)
	}

	kpi := pterm.TableData{
		{"Listings", "Average monthly salary (est.)", "Region with most listings"},
		{humanize.Comma(int64(r.Total)), avg, r.TopRegion},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(kpi).Render(); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	pterm.DefaultSection.Println("Listings by region")
	if err := renderCounts(r.Regions); err != nil {
		return fmt.Errorf("failed to render regions: %w", err)
	}

	pterm.DefaultSection.Printfln("Monthly salary distribution (%d of %d listings)", r.WithSalary, r.Total)
	if len(r.SalaryHistogram) == 0 {
		pterm.Info.Println("Most listings are negotiable or their salary could not be parsed.")
	} else if err := renderHistogram(r.SalaryHistogram); err != nil {
		return fmt.Errorf("failed to render salary histogram: %w", err)
	}

	pterm.DefaultSection.Printfln("Most requested skills (top %d)", len(r.TopSkills))
	if len(r.TopSkills) == 0 {
		pterm.Info.Println("Not enough skill data in this search.")
		return nil
	}
	if err := renderCounts(r.TopSkills); err != nil {
		return fmt.Errorf("failed to render skills: %w", err)
	}
	return nil
}

// RenderListings prints one table row per listing
func RenderListings(listings []models.Listing, hyperlinks bool) error {
	data := pterm.TableData{{"Company", "Title", "Region", "Salary", "Skills", "URL"}}
	for _, l := range listings {
		data = append(data, []string{
			utils.TruncateString(l.Company, 20),
			utils.TruncateString(l.Title, 30),
			l.RegionCode,
			ColorizeSalary(l.SalaryEstimate),
			utils.TruncateString(l.SkillsText, 30),
			FormatURL(l.URL, hyperlinks),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderCounts(counts []report.Count) error {
	bars := make(pterm.Bars, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, pterm.Bar{Label: c.Label, Value: c.Count})
	}
	return pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()
}

func renderHistogram(bins []report.Bin) error {
	bars := make(pterm.Bars, 0, len(bins))
	for _, b := range bins {
		bars = append(bars, pterm.Bar{Label: binLabel(b), Value: b.Count})
	}
	return pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()
}

func binLabel(b report.Bin) string {
	if b.Low == b.High {
		return humanize.Comma(int64(b.Low))
	}
	return fmt.Sprintf("%s-%s", humanize.Comma(int64(b.Low)), humanize.Comma(int64(b.High)))
}
