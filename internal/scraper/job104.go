package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/EduCatCode/104-test/internal/client"
	"github.com/EduCatCode/104-test/internal/models"
	"github.com/EduCatCode/104-test/internal/utils"
)

const (
	job104SearchURL = "https://www.104.com.tw/jobs/search/list"
	job104Scheme    = "https:"

	// MinPages and MaxPages bound the number of pages one run may request
	MinPages = 1
	MaxPages = 10

	expansionFacets = "area,spec,com,job,wf,wktm"
	requestTimeout  = 30 * time.Second
)

// Result is the outcome of one fetch run. Listings keeps every record collected
// before the run stopped, in page order.
type Result struct {
	Listings     []models.Listing
	Stop         StopReason
	Err          *PageError
	PagesFetched int
}

// Fetcher pages through the 104 job search API
type Fetcher struct {
	httpClient *http.Client
	baseURL    string
	delay      DelayFunc
	sleep      SleepFunc
	log        logrus.FieldLogger
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithHTTPClient sets the client used for search requests
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.httpClient = c }
}

// WithBaseURL points the fetcher at another search endpoint
func WithBaseURL(u string) Option {
	return func(f *Fetcher) { f.baseURL = u }
}

// WithDelay sets the pause policy between pages
func WithDelay(d DelayFunc) Option {
	return func(f *Fetcher) { f.delay = d }
}

// WithSleep replaces the blocking sleep, mostly for tests
func WithSleep(s SleepFunc) Option {
	return func(f *Fetcher) { f.sleep = s }
}

// WithLogger sets the diagnostic logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Fetcher) { f.log = l }
}

// NewFetcher creates a Fetcher with the default 104 endpoint and a 0.5s-1.5s delay
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    job104SearchURL,
		delay:      UniformDelay(DefaultMinDelay, DefaultMaxDelay),
		sleep:      sleepContext,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch requests pages 1..pages for keyword, one at a time, and normalizes every
// record it gets back. A page without results ends the run early; a failing page
// ends it too and is reported through progress and Result.Err. The returned
// error is only set for invalid arguments.
func (f *Fetcher) Fetch(ctx context.Context, keyword string, pages int, progress Progress) (Result, error) {
	if strings.TrimSpace(keyword) == "" {
		return Result{}, ErrEmptyKeyword
	}
	if pages < MinPages || pages > MaxPages {
		return Result{}, fmt.Errorf("%w, got %d", ErrInvalidPageCount, pages)
	}
	if progress == nil {
		progress = NopProgress{}
	}

	result := Result{Stop: StopExhausted}

	for page := 1; page <= pages; page++ {
		logger := f.log.WithFields(logrus.Fields{"keyword": keyword, "page": page})
		progress.Status(page, pages)

		listings, err := f.fetchPage(ctx, keyword, page)
		if err != nil {
			// records parsed before the failure are kept
			result.Listings = append(result.Listings, listings...)
			result.Stop = StopError
			result.Err = &PageError{Page: page, Err: err}
			logger.WithError(err).Warn("search page failed, stopping")
			progress.PageFailed(result.Err)
			break
		}

		if len(listings) == 0 {
			result.Stop = StopEmpty
			logger.Debug("no more results")
			break
		}

		result.Listings = append(result.Listings, listings...)
		result.PagesFetched = page
		logger.WithField("count", len(listings)).Debug("page processed")
		progress.Advance(float64(page) / float64(pages))

		if page < pages {
			delay := f.delay()
			logger.Debugf("waiting %v before next page", delay)
			if err := f.sleep(ctx, delay); err != nil {
				result.Stop = StopError
				result.Err = &PageError{Page: page + 1, Err: err}
				progress.PageFailed(result.Err)
				break
			}
		}
	}

	progress.Done(len(result.Listings))
	return result, nil
}

func (f *Fetcher) fetchPage(ctx context.Context, keyword string, page int) ([]models.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.pageURL(keyword, page), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range client.SearchHeaders() {
		req.Header[key] = values
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := client.ReadResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return parseSearchPage(body)
}

func (f *Fetcher) pageURL(keyword string, page int) string {
	params := url.Values{}
	params.Set("ro", "0")
	params.Set("kwop", "7")
	params.Set("keyword", keyword)
	params.Set("expansionType", expansionFacets)
	params.Set("order", "1")
	params.Set("asc", "0")
	params.Set("page", strconv.Itoa(page))
	params.Set("mode", "s")
	params.Set("jobsource", "2018indexpoc")
	params.Set("langFlag", "0")
	return f.baseURL + "?" + params.Encode()
}

// parseSearchPage returns the listings of one search response. A missing or
// empty data.list yields no listings and no error. On a malformed record the
// listings built before it are returned along with the error.
func parseSearchPage(body []byte) ([]models.Listing, error) {
	if !gjson.ValidBytes(body) {
		if title := htmlTitle(body); title != "" {
			return nil, fmt.Errorf("received an HTML page instead of JSON: %q", title)
		}
		return nil, errors.New("response is not valid JSON")
	}

	list := gjson.GetBytes(body, "data.list")
	if !list.IsArray() {
		return nil, nil
	}

	records := list.Array()
	listings := make([]models.Listing, 0, len(records))
	for i, record := range records {
		if !record.IsObject() {
			return listings, fmt.Errorf("record %d is not an object", i)
		}
		listings = append(listings, toListing(record))
	}
	return listings, nil
}

func toListing(job gjson.Result) models.Listing {
	region := job.Get("jobAddrNoDesc").String()
	salary := job.Get("salaryDesc").String()

	return models.Listing{
		Title:              job.Get("jobName").String(),
		Company:            job.Get("custName").String(),
		RegionText:         region,
		RegionCode:         utils.RegionCode(region),
		SalaryText:         salary,
		SalaryEstimate:     utils.SalaryEstimate(salary),
		EducationText:      job.Get("optionEdu").String(),
		ExperienceText:     job.Get("periodDesc").String(),
		SkillsText:         utils.JoinSkills(specialties(job)),
		DescriptionPreview: utils.DescriptionPreview(job.Get("description").String()),
		URL:                jobURL(job),
	}
}

// specialties collects specialty[].description, skipping entries without one
func specialties(job gjson.Result) []string {
	var skills []string
	job.Get("specialty").ForEach(func(_, s gjson.Result) bool {
		if d := s.Get("description"); d.Exists() && d.String() != "" {
			skills = append(skills, d.String())
		}
		return true
	})
	return skills
}

func jobURL(job gjson.Result) string {
	link := job.Get("link.job").String()
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return job104Scheme + link
}

// htmlTitle returns the <title> of an HTML body, the shape of 104's block and
// maintenance pages. It is empty for anything else.
func htmlTitle(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '<' {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(trimmed))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
