package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"

	"github.com/EduCatCode/104-test/internal/client"
	"github.com/EduCatCode/104-test/internal/config"
	"github.com/EduCatCode/104-test/internal/export"
	"github.com/EduCatCode/104-test/internal/report"
	"github.com/EduCatCode/104-test/internal/scraper"
	"github.com/EduCatCode/104-test/internal/ui"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 jobs104 Usage Examples 📋")
	fmt.Println("\n1. Analyze the first 3 pages of \"Python 數據分析\" postings:")
	fmt.Println("   jobs104 -keyword \"Python 數據分析\"")

	fmt.Println("\n2. Fetch 10 pages of golang postings and list them in a table:")
	fmt.Println("   jobs104 -keyword golang -pages 10 -table")

	fmt.Println("\n3. Export the listings to CSV (opens cleanly in Excel):")
	fmt.Println("   jobs104 -keyword 前端工程師 -export")

	fmt.Println("\n4. Go slower and through a proxy, without the banner:")
	fmt.Println("   jobs104 -keyword devops -min-delay 2s -max-delay 4s -proxy http://localhost:8080 -silence")

	fmt.Println("\n5. Read settings from a YAML file, flags still win:")
	fmt.Println("   jobs104 -config ./config.yaml -pages 5")
	os.Exit(0)
}

func main() {
	// Command line flags
	configPath := flag.String("config", config.DefaultPath, "Path to a YAML config file")
	keyword := flag.String("keyword", "", "Job keyword to search for")
	pages := flag.Int("pages", 0, fmt.Sprintf("Number of pages to fetch (%d-%d)", scraper.MinPages, scraper.MaxPages))
	minDelay := flag.Duration("min-delay", 0, "Shortest pause between pages")
	maxDelay := flag.Duration("max-delay", 0, "Longest pause between pages")
	proxyURL := flag.String("proxy", "", "Proxy URL to use")
	csvPath := flag.String("csv", "", "Write listings to this CSV file")
	exportCSV := flag.Bool("export", false, "Write listings to 104_jobs_<keyword>.csv")
	table := flag.Bool("table", false, "Show every listing in a table")
	hyperlinks := flag.Bool("hyperlinks", false, "Render job URLs as clickable terminal links")
	debug := flag.Bool("debug", false, "Enable debug mode")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	ui.PrintBanner(*silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Flags override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "keyword":
			cfg.Scraper.Keyword = *keyword
		case "pages":
			cfg.Scraper.Pages = *pages
		case "min-delay":
			cfg.Scraper.MinDelay = *minDelay
		case "max-delay":
			cfg.Scraper.MaxDelay = *maxDelay
		case "proxy":
			cfg.Scraper.Proxy = *proxyURL
		case "csv":
			cfg.Export.CSVPath = *csvPath
		}
	})
	if *exportCSV && cfg.Export.CSVPath == "" {
		cfg.Export.CSVPath = export.FileName(cfg.Scraper.Keyword)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	httpClient, err := client.CreateHTTPClient(cfg.Scraper.Proxy)
	if err != nil {
		log.Fatal(err)
	}

	fetcher := scraper.NewFetcher(
		scraper.WithHTTPClient(httpClient),
		scraper.WithDelay(scraper.UniformDelay(cfg.Scraper.MinDelay, cfg.Scraper.MaxDelay)),
		scraper.WithLogger(log.StandardLogger()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pterm.Info.Printfln("Searching 104 for %q (%d pages)", cfg.Scraper.Keyword, cfg.Scraper.Pages)
	start := time.Now()

	progress := ui.NewBarProgress(cfg.Scraper.Pages, nil)
	result, err := fetcher.Fetch(ctx, cfg.Scraper.Keyword, cfg.Scraper.Pages, progress)
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"listings": len(result.Listings),
		"pages":    result.PagesFetched,
		"stop":     result.Stop,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Debug("fetch finished")

	if *table && len(result.Listings) > 0 {
		if err := ui.RenderListings(result.Listings, *hyperlinks); err != nil {
			log.Errorf("Error rendering listings: %v", err)
		}
	}

	summary, err := report.Build(result.Listings, report.Options{
		Bins:      cfg.Report.Bins,
		TopSkills: cfg.Report.TopSkills,
	})
	if errors.Is(err, report.ErrNoData) {
		ui.RenderNoData()
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := ui.RenderReport(cfg.Scraper.Keyword, summary); err != nil {
		log.Errorf("Error rendering report: %v", err)
	}

	if cfg.Export.CSVPath != "" {
		if err := writeCSV(cfg.Export.CSVPath, result); err != nil {
			log.Fatalf("Error exporting CSV: %v", err)
		}
		pterm.Success.Printfln("Saved %d listings to %s", len(result.Listings), cfg.Export.CSVPath)
	}
}

func writeCSV(path string, result scraper.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, result.Listings); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
