package cmd

import (
	"io"

	"github.com/jimezsa/jobscan/internal/config"
	"github.com/jimezsa/jobscan/internal/scan"
	"github.com/jimezsa/jobscan/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	// Fetcher replaces the network client when set.
	Fetcher scan.Fetcher
}
