package scraper

import "fmt"

// Progress receives updates while a fetch runs. Each Fetch call should get its
// own instance; the fetcher never shares one between runs.
type Progress interface {
	// Status is called before a page is requested
	Status(page, total int)
	// Advance is called after a page was processed, with page/total
	Advance(fraction float64)
	// PageFailed is called once when a page error ends the run
	PageFailed(err *PageError)
	// Done is called when the run ends, whatever the reason
	Done(found int)
}

// NopProgress discards all updates
type NopProgress struct{}

func (NopProgress) Status(int, int) {}
func (NopProgress) Advance(float64) {}
func (NopProgress) PageFailed(*PageError) {}
func (NopProgress) Done(int) {}

// StatusLine is the human readable form of a Status update
func StatusLine(page, total int) string {
	return fmt.Sprintf("fetching page %d of %d", page, total)
}
