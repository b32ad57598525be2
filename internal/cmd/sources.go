package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/jobscan/internal/filter"
	"github.com/jimezsa/jobscan/internal/scraper"
)

type SourcesCmd struct{}

type KeywordsCmd struct {
	KeywordSet string `name:"keyword-set" help:"Named keyword vocabulary (adapter-v1, display-v1)."`
}

type sourceInfo struct {
	Source     string `json:"source"`
	Company    string `json:"company"`
	ListingURL string `json:"listing_url"`
}

func (c *SourcesCmd) Run(ctx *Context) error {
	registry := scraper.Registry()
	infos := make([]sourceInfo, 0, len(registry))
	for _, name := range scraper.Sites() {
		adapter, ok := registry[name]
		if !ok {
			continue
		}
		profile := adapter.Profile()
		infos = append(infos, sourceInfo{
			Source:     name,
			Company:    profile.Company,
			ListingURL: profile.ListingURL,
		})
	}

	if ctx.JSONOutput {
		encoder := json.NewEncoder(ctx.Out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	if !ctx.PlainText {
		fmt.Fprintln(tw, "SOURCE\tCOMPANY\tLISTING")
	}
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Source, info.Company, info.ListingURL)
	}
	return tw.Flush()
}

func (c *KeywordsCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	if strings.TrimSpace(c.KeywordSet) != "" {
		cfg.KeywordSet = c.KeywordSet
		cfg.Keywords = nil
	}
	keywords, err := cfg.ResolveKeywords()
	if err != nil {
		return err
	}

	name := strings.ToLower(strings.TrimSpace(cfg.KeywordSet))
	if name == "" {
		name = filter.DefaultKeywordSet
	}
	if len(cfg.Keywords) > 0 {
		name = "custom"
	}

	if ctx.JSONOutput {
		encoder := json.NewEncoder(ctx.Out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{"set": name, "keywords": keywords})
	}

	if _, err := fmt.Fprintf(ctx.Out, "%s: %s\n", name, strings.Join(keywords, ", ")); err != nil {
		return err
	}
	if !ctx.PlainText && ctx.UI != nil {
		ctx.UI.Infof("available sets: %s", strings.Join(filter.KeywordSetNames(), ", "))
	}
	return nil
}
