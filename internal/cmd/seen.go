package cmd

import (
	"fmt"

	"github.com/jimezsa/jobscan/internal/seen"
)

// SeenCmd works on JSON scan exports (`scan --json` or `--format json`)
// and the history file used by `scan --seen`.
type SeenCmd struct {
	Diff   SeenDiffCmd   `cmd:"" help:"Write postings from a scan export that the history has not recorded yet."`
	Update SeenUpdateCmd `cmd:"" help:"Record the postings of a scan export in the history."`
}

type SeenDiffCmd struct {
	New   string `name:"new" required:"" help:"JSON scan export to check."`
	Seen  string `name:"seen" required:"" help:"History file. Missing file is treated as empty."`
	Out   string `name:"out" required:"" help:"Where to write the unrecorded postings as JSON."`
	Stats bool   `name:"stats" help:"Print counts to stdout."`
}

type SeenUpdateCmd struct {
	Seen  string `name:"seen" required:"" help:"History file. Missing file is treated as empty."`
	Input string `name:"input" required:"" help:"JSON scan export to record."`
	Out   string `name:"out" required:"" help:"Where to write the updated history; may equal --seen."`
	Stats bool   `name:"stats" help:"Print counts to stdout."`
}

func (c *SeenDiffCmd) Run(ctx *Context) error {
	exported, err := seen.ReadJobs(c.New)
	if err != nil {
		return fmt.Errorf("read scan export %s: %w", c.New, err)
	}
	history, err := seen.ReadJobsAllowMissing(c.Seen)
	if err != nil {
		return fmt.Errorf("read history %s: %w", c.Seen, err)
	}

	fresh, stats := seen.Diff(exported, history)
	if err := seen.WriteJobs(c.Out, fresh); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	ctx.Logger.Debug().Int("new", stats.Unseen).Int("invalid", stats.Invalid).Msg("history diff")

	if !c.Stats {
		return nil
	}
	_, err = fmt.Fprintln(ctx.Out, formatDiffStats(stats))
	return err
}

func (c *SeenUpdateCmd) Run(ctx *Context) error {
	history, err := seen.ReadJobsAllowMissing(c.Seen)
	if err != nil {
		return fmt.Errorf("read history %s: %w", c.Seen, err)
	}
	exported, err := seen.ReadJobs(c.Input)
	if err != nil {
		return fmt.Errorf("read scan export %s: %w", c.Input, err)
	}

	merged, stats := seen.Merge(history, exported)
	if err := seen.WriteJobs(c.Out, merged); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	ctx.Logger.Debug().Int("added", stats.Added).Int("total", stats.TotalOut).Msg("history updated")

	if !c.Stats {
		return nil
	}
	_, err = fmt.Fprintln(ctx.Out, formatMergeStats(stats))
	return err
}

// Postings without a source or title cannot be keyed and count as invalid.
func formatDiffStats(stats seen.DiffStats) string {
	return fmt.Sprintf("exported=%d recorded=%d invalid=%d new=%d",
		stats.TotalNew, stats.TotalSeen, stats.Invalid, stats.Unseen)
}

func formatMergeStats(stats seen.MergeStats) string {
	return fmt.Sprintf("recorded=%d exported=%d invalid=%d added=%d total=%d",
		stats.TotalSeen, stats.TotalInput, stats.Invalid, stats.Added, stats.TotalOut)
}
