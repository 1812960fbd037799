package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/worldfacts"
	"github.com/fwojciec/worldfacts/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Profile   *worldfacts.Profile
	Countries worldfacts.CountryService
	Crawls    worldfacts.CrawlService
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"WORLDFACTS_DB" help:"Database path"`
	Verbose bool   `short:"v" help:"Log every fetch and harvested country"`

	Crawl    CrawlCmd    `cmd:"" help:"Harvest countries from an encyclopedia index"`
	List     ListCmd     `cmd:"" help:"List harvested countries"`
	Crawls   CrawlsCmd   `cmd:"" help:"List crawl runs"`
	Profiles ProfilesCmd `cmd:"" help:"Show built-in extraction profiles"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Profile     string        `short:"p" default:"ro" env:"WORLDFACTS_PROFILE" help:"Built-in profile (en, ro)"`
	ProfileFile string        `name:"profile-file" type:"existingfile" help:"YAML profile file; overrides --profile"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"10s" help:"Timeout for each fetch attempt"`
	RPS         float64       `name:"rps" default:"5" help:"Requests per second per host (0 disables limiting)"`
	Retries     int           `default:"3" help:"Retries per page with doubling backoff from 1s"`
	Render      bool          `help:"Render pages in headless Chrome"`
	UserAgent   string        `name:"user-agent" default:"worldfacts/1.0" help:"User-Agent header for HTTP fetches"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Name     string `help:"Only the country with this name"`
	Crawl    string `help:"Crawl ID (defaults to the latest crawl)"`
	All      bool   `help:"Countries from every crawl"`
	Sort     string `help:"Sort by name, population, density or area"`
	Desc     bool   `help:"Sort descending"`
	Limit    int    `short:"n" help:"Maximum number of countries"`
	Offset   int    `help:"Number of countries to skip"`
	JSON     bool   `name:"json" xor:"format" help:"Print one JSON object per line"`
	Markdown bool   `xor:"format" help:"Print a Markdown table"`
}

// CrawlsCmd is the "crawls" subcommand.
type CrawlsCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of runs"`
}

// ProfilesCmd is the "profiles" subcommand.
type ProfilesCmd struct {
	Name string `arg:"" optional:"" help:"Print this profile as YAML"`
}
