package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jimezsa/jobscan/internal/config"
	"github.com/jimezsa/jobscan/internal/export"
	"github.com/jimezsa/jobscan/internal/filter"
	"github.com/jimezsa/jobscan/internal/models"
	"github.com/jimezsa/jobscan/internal/network"
	"github.com/jimezsa/jobscan/internal/scan"
	"github.com/jimezsa/jobscan/internal/scraper"
	"github.com/jimezsa/jobscan/internal/seen"
	"github.com/muesli/termenv"
)

const noPositionsMessage = "No positions found at selected companies."

type ScanCmd struct {
	Sources         string `help:"Comma-separated sources, or all." default:"" env:"JOBSCAN_SOURCES"`
	AllRoles        bool   `name:"all-roles" help:"Show every role instead of AI and data roles only."`
	Departments     string `help:"Comma-separated department allow-list."`
	ListDepartments bool   `name:"list-departments" help:"Print the departments found instead of jobs."`
	Keywords        string `help:"Comma-separated title keywords; overrides the keyword set."`
	KeywordSet      string `name:"keyword-set" help:"Named keyword vocabulary (adapter-v1, display-v1)."`
	Timeout         int    `help:"Request timeout in seconds." default:"0"`
	Format          string `help:"Output format: csv, json, md, tsv, table." enum:",csv,json,md,tsv,table" default:""`
	Links           string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output          string `name:"output" short:"o" help:"Write output to a file. A directory or 'auto' gets a timestamped CSV name." default:""`
	Seen            string `help:"Seen jobs JSON history file (B)." default:""`
	NewOnly         bool   `name:"new-only" help:"Output only unseen jobs (requires --seen)."`
	SeenUpdate      bool   `name:"seen-update" help:"Merge unseen jobs into the --seen file after output."`
}

func (c *ScanCmd) Run(ctx *Context) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runScan(runCtx, ctx, c)
}

func runScan(runCtx context.Context, ctx *Context, opts *ScanCmd) error {
	if opts.NewOnly && strings.TrimSpace(opts.Seen) == "" {
		return fmt.Errorf("--new-only requires --seen")
	}
	if opts.SeenUpdate && strings.TrimSpace(opts.Seen) == "" {
		return fmt.Errorf("--seen-update requires --seen")
	}

	cfg := ctx.Config
	if opts.Timeout > 0 {
		cfg.TimeoutSeconds = opts.Timeout
	}
	if strings.TrimSpace(opts.KeywordSet) != "" {
		cfg.KeywordSet = opts.KeywordSet
		cfg.Keywords = nil
	}
	if strings.TrimSpace(opts.Keywords) != "" {
		cfg.Keywords = filter.ParseKeywords(opts.Keywords)
	}
	keywords, err := cfg.ResolveKeywords()
	if err != nil {
		return err
	}

	mode := filter.ModeFiltered
	if opts.AllRoles {
		mode = filter.ModeAll
	}

	scanCfg := cfg.ScanConfig()
	fetcher := ctx.Fetcher
	if fetcher == nil {
		client, err := network.NewClient(scanCfg)
		if err != nil {
			return err
		}
		fetcher = client
	}

	sources := config.SplitCSV(opts.Sources)
	if len(sources) == 0 {
		sources = cfg.DefaultSources
	}

	scanner := scan.New(fetcher, scraper.Registry(), ctx.Logger, scanCfg.Concurrency)
	selected, err := scanner.Select(sources)
	if err != nil {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(scanner.Sources(), ", "))
	}

	var stopIndicator func()
	if ctx.UI != nil {
		stopIndicator = ctx.UI.StartIndicator("Scanning career pages...")
	}
	result := scanner.RunAdapters(runCtx, selected)
	if stopIndicator != nil {
		stopIndicator()
	}

	reportOutcomes(ctx, result)

	jobs := filter.Apply(result.Jobs, keywords, mode)
	jobs = filter.ByDepartment(jobs, config.SplitCSV(opts.Departments))

	if opts.ListDepartments {
		for _, department := range filter.Departments(jobs) {
			if _, err := fmt.Fprintln(ctx.Out, department); err != nil {
				return err
			}
		}
		return nil
	}

	var unseenJobs []models.Job
	if strings.TrimSpace(opts.Seen) != "" {
		seenJobs, err := seen.ReadJobsAllowMissing(opts.Seen)
		if err != nil {
			return fmt.Errorf("read --seen: %w", err)
		}
		unseenJobs, _ = seen.Diff(jobs, seenJobs)
	}

	outputJobs := jobs
	if opts.NewOnly {
		outputJobs = unseenJobs
	}

	outputPath, err := resolveOutputPath(opts.Output, time.Now())
	if err != nil {
		return err
	}
	if strings.TrimSpace(opts.Seen) != "" && pathsEqual(outputPath, opts.Seen) {
		return fmt.Errorf("--output path must differ from --seen")
	}

	if len(outputJobs) == 0 && ctx.UI != nil {
		ctx.UI.Warnf("%s", noPositionsMessage)
	}

	format, err := resolveFormat(ctx, opts.Format, outputPath)
	if err != nil {
		return err
	}
	if len(outputJobs) > 0 || outputPath != "" || format == export.FormatJSON {
		if err := writeOutput(ctx, outputJobs, format, opts.Links, outputPath); err != nil {
			return err
		}
	}

	if opts.SeenUpdate {
		if err := updateSeenHistory(opts.Seen, unseenJobs); err != nil {
			return err
		}
	}

	printScanSummary(ctx, outputJobs, result)
	return nil
}

func writeOutput(ctx *Context, jobs []models.Job, format export.Format, links string, outputPath string) error {
	writer := ctx.Out
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && isTTY(writer)
	linkStyle := export.LinkStyleShort
	if strings.EqualFold(links, string(export.LinkStyleFull)) {
		linkStyle = export.LinkStyleFull
	}
	if err := export.WriteJobs(writer, jobs, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
	}); err != nil {
		return err
	}
	if outputPath != "" && ctx.UI != nil {
		ctx.UI.Successf("Wrote %d jobs to %s", len(jobs), outputPath)
	}
	return nil
}

func reportOutcomes(ctx *Context, result models.ScanResult) {
	if ctx == nil || ctx.UI == nil {
		return
	}
	for _, outcome := range result.Outcomes {
		ctx.UI.SourceStatus(outcome.Source, outcome.OK, outcome.Count, outcome.Reason())
	}
}

// resolveOutputPath expands "auto" and directories to a timestamped CSV name.
func resolveOutputPath(raw string, now time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if strings.EqualFold(raw, "auto") {
		return export.DefaultFileName(now), nil
	}
	info, err := os.Stat(raw)
	if err == nil && info.IsDir() {
		return filepath.Join(raw, export.DefaultFileName(now)), nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("stat --output: %w", err)
	}
	return raw, nil
}

func pathsEqual(a, b string) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil {
		return absA == absB
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

func updateSeenHistory(seenPath string, inputJobs []models.Job) error {
	seenJobs, err := seen.ReadJobsAllowMissing(seenPath)
	if err != nil {
		return fmt.Errorf("read --seen: %w", err)
	}

	mergedJobs, _ := seen.Merge(seenJobs, inputJobs)
	if err := seen.WriteJobs(seenPath, mergedJobs); err != nil {
		return fmt.Errorf("write --seen: %w", err)
	}

	return nil
}

func printScanSummary(ctx *Context, jobs []models.Job, result models.ScanResult) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(ctx.Err, "%s\n", formatScanSummary(jobs, result))
}

func formatScanSummary(jobs []models.Job, result models.ScanResult) string {
	failed := "none"
	if failures := result.Failed(); len(failures) > 0 {
		names := make([]string, 0, len(failures))
		for _, outcome := range failures {
			names = append(names, outcome.Source)
		}
		failed = strings.Join(names, ",")
	}

	counts := countJobsBySource(jobs)
	if len(counts) == 0 {
		return fmt.Sprintf("summary: jobs=0 by_source=none failed=%s", failed)
	}

	parts := make([]string, 0, len(counts))
	for _, count := range counts {
		parts = append(parts, fmt.Sprintf("%s:%d", count.source, count.total))
	}

	return fmt.Sprintf("summary: jobs=%d by_source=%s failed=%s", len(jobs), strings.Join(parts, ", "), failed)
}

type sourceCount struct {
	source string
	total  int
}

func countJobsBySource(jobs []models.Job) []sourceCount {
	totals := make(map[string]int, len(jobs))
	for _, job := range jobs {
		source := strings.ToLower(strings.TrimSpace(job.Source))
		if source == "" {
			source = "unknown"
		}
		totals[source]++
	}

	counts := make([]sourceCount, 0, len(totals))
	for source, total := range totals {
		counts = append(counts, sourceCount{source: source, total: total})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].source < counts[j].source
	})
	return counts
}

func resolveFormat(ctx *Context, format string, outputPath string) (export.Format, error) {
	if outputPath != "" {
		if ctx.JSONOutput {
			return export.FormatJSON, nil
		}
		if ctx.PlainText {
			return export.FormatTSV, nil
		}
		if format == "" {
			return export.FormatCSV, nil
		}
		return parseFormat(format)
	}

	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if format != "" {
		return parseFormat(format)
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
