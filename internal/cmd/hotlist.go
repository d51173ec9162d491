package cmd

import (
	"github.com/benchsales/xraycli/internal/xray"
)

// HotlistCmd generates queries that surface vendor hotlists and
// requirement-list mailing archives.
type HotlistCmd struct {
	Title string `arg:"" optional:"" help:"Job title. Optional when --profile is provided."`
	QueryOptions
}

func (h *HotlistCmd) Run(ctx *Context) error {
	params, err := resolveParams(ctx, h.Title, h.QueryOptions)
	if err != nil {
		return err
	}

	engine := xray.NewEngine()
	return writeQueries(ctx, engine.GenerateHotlist(params), h.QueryOptions)
}
