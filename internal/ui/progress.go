package ui

import (
	"io"
	"math"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"

	"github.com/EduCatCode/104-test/internal/scraper"
)

const barTemplate = `{{string . "status"}} {{bar . }} {{percent . }}`

var _ scraper.Progress = (*BarProgress)(nil)

// BarProgress shows a fetch run as a terminal progress bar
type BarProgress struct {
	bar      *pb.ProgressBar
	total    int
	finished bool
	failed   *scraper.PageError
}

// NewBarProgress creates a bar for a run of total pages. A nil writer keeps pb's default (stderr).
func NewBarProgress(total int, w io.Writer) *BarProgress {
	bar := pb.New(total).SetTemplateString(barTemplate)
	if w != nil {
		bar.SetWriter(w)
	}
	bar.Start()
	return &BarProgress{bar: bar, total: total}
}

func (p *BarProgress) Status(page, total int) {
	p.bar.Set("status", scraper.StatusLine(page, total))
}

func (p *BarProgress) Advance(fraction float64) {
	p.bar.SetCurrent(int64(math.Round(fraction * float64(p.total))))
}

func (p *BarProgress) PageFailed(err *scraper.PageError) {
	p.failed = err
	p.finish()
	pterm.Warning.Printfln("Page %d failed, keeping what was collected so far: %v", err.Page, err.Err)
}

func (p *BarProgress) Done(found int) {
	p.finish()
	if p.failed != nil {
		pterm.Info.Printfln("Fetch stopped at page %d, %d listings collected", p.failed.Page, found)
		return
	}
	pterm.Success.Printfln("Fetch complete, %d listings collected", found)
}

// Current is the number of pages the bar shows as done
func (p *BarProgress) Current() int64 {
	return p.bar.Current()
}

func (p *BarProgress) finish() {
	if p.finished {
		return
	}
	p.finished = true
	p.bar.Finish()
}
