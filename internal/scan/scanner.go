package scan

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jimezsa/jobscan/internal/models"
	"github.com/jimezsa/jobscan/internal/network"
	"github.com/jimezsa/jobscan/internal/normalize"
	"github.com/jimezsa/jobscan/internal/scraper"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// Fetcher issues the single GET made per source.
type Fetcher interface {
	Fetch(ctx context.Context, url string, headers map[string]string) (network.Response, error)
}

// Scanner runs fetch, extract and normalize for each requested source.
// Sources share nothing; their results are joined in request order.
type Scanner struct {
	fetcher     Fetcher
	adapters    map[string]scraper.Adapter
	order       []string
	logger      zerolog.Logger
	concurrency int
}

func New(fetcher Fetcher, adapters map[string]scraper.Adapter, logger zerolog.Logger, concurrency int) *Scanner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Scanner{
		fetcher:     fetcher,
		adapters:    adapters,
		order:       sourceOrder(adapters),
		logger:      logger,
		concurrency: concurrency,
	}
}

// Sources returns the registered source ids in display order.
func (s *Scanner) Sources() []string {
	return append([]string{}, s.order...)
}

// Select resolves requested ids (or "all") to adapters, keeping request
// order and dropping repeats.
func (s *Scanner) Select(sources []string) ([]scraper.Adapter, error) {
	requested := scraper.NormalizeSites(sources)
	if len(requested) == 0 || (len(requested) == 1 && requested[0] == "all") {
		requested = s.order
	}

	selected := make([]scraper.Adapter, 0, len(requested))
	seen := map[string]struct{}{}
	for _, name := range requested {
		adapter, ok := s.adapters[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		selected = append(selected, adapter)
	}
	return selected, nil
}

// Run scans the requested sources. The only error is an invalid request;
// every per-source failure is reported in the result's outcomes.
func (s *Scanner) Run(ctx context.Context, sources []string) (models.ScanResult, error) {
	selected, err := s.Select(sources)
	if err != nil {
		return models.ScanResult{}, err
	}
	return s.RunAdapters(ctx, selected), nil
}

func (s *Scanner) RunAdapters(ctx context.Context, adapters []scraper.Adapter) models.ScanResult {
	var (
		g        errgroup.Group
		jobs     = make([][]models.Job, len(adapters))
		outcomes = make([]models.Outcome, len(adapters))
	)
	g.SetLimit(s.concurrency)

	for i, adapter := range adapters {
		i, adapter := i, adapter
		g.Go(func() error {
			jobs[i], outcomes[i] = s.scanSource(ctx, adapter)
			return nil
		})
	}
	_ = g.Wait()

	result := models.ScanResult{Outcomes: outcomes}
	for _, block := range jobs {
		result.Jobs = append(result.Jobs, block...)
	}
	return result
}

func (s *Scanner) scanSource(ctx context.Context, adapter scraper.Adapter) (jobs []models.Job, outcome models.Outcome) {
	name := adapter.Name()
	logger := s.logger.With().Str("source", name).Logger()

	fail := func(stage Stage, err error) ([]models.Job, models.Outcome) {
		logger.Warn().Str("stage", string(stage)).Err(err).Msg("source failed")
		return nil, models.Outcome{
			Source: name,
			Err:    &SourceError{Source: name, Stage: stage, Err: err},
		}
	}

	defer func() {
		if r := recover(); r != nil {
			jobs, outcome = fail(StagePanic, fmt.Errorf("%v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return fail(StageCanceled, err)
	}

	profile := adapter.Profile()
	logger.Debug().Str("url", profile.ListingURL).Msg("fetching source")

	resp, err := s.fetcher.Fetch(ctx, profile.ListingURL, nil)
	if err != nil {
		return fail(StageFetch, err)
	}

	candidates, err := adapter.Extract(resp.Body)
	if err != nil {
		return fail(StageExtract, err)
	}

	jobs = normalize.All(candidates, profile)
	logger.Info().Int("count", len(jobs)).Msg("source scanned")

	return jobs, models.Outcome{Source: name, OK: true, Count: len(jobs)}
}

func sourceOrder(adapters map[string]scraper.Adapter) []string {
	order := make([]string, 0, len(adapters))
	known := map[string]struct{}{}
	for _, site := range scraper.Sites() {
		if _, ok := adapters[site]; ok {
			order = append(order, site)
			known[site] = struct{}{}
		}
	}

	var extra []string
	for site := range adapters {
		if _, ok := known[site]; !ok {
			extra = append(extra, site)
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		return strings.ToLower(extra[i]) < strings.ToLower(extra[j])
	})
	return append(order, extra...)
}
