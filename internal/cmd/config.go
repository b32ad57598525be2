package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jimezsa/jobscan/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write the default config file."`
	Path PathConfigCmd `cmd:"" help:"Print the config file path."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct {
	Dir bool `help:"Print the directory instead of the file."`
}

func (c *InitConfigCmd) Run(ctx *Context) error {
	paths, err := config.Init()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		ctx.UI.Infof("Config already initialized at %s", ctx.ConfigDir)
		return nil
	}
	ctx.UI.Successf("Created: %s", strings.Join(paths, ", "))
	ctx.UI.Infof("Edit timeout_seconds, keyword_set or default_sources to change scan defaults.")
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	if c.Dir {
		_, err := fmt.Fprintln(ctx.Out, ctx.ConfigDir)
		return err
	}
	_, err := fmt.Fprintln(ctx.Out, filepath.Join(ctx.ConfigDir, config.ConfigFileName))
	return err
}
