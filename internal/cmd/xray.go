package cmd

import (
	"strings"

	"github.com/benchsales/xraycli/internal/config"
	"github.com/benchsales/xraycli/internal/models"
	"github.com/benchsales/xraycli/internal/xray"
)

// XRayCmd generates the X-ray query set, optionally narrowed to a subset
// of platforms.
type XRayCmd struct {
	Title string `arg:"" optional:"" help:"Job title. Optional when --profile is provided."`
	Sites string `help:"Comma-separated list of platforms (default: all)." default:"all"`
	QueryOptions
}

// PlatformCmd is an X-ray run pre-filtered to a single platform.
type PlatformCmd struct {
	Title string `arg:"" optional:"" help:"Job title. Optional when --profile is provided."`
	QueryOptions
	Platform models.Platform `kong:"-"`
}

func (x *XRayCmd) Run(ctx *Context) error {
	platforms, err := parsePlatforms(x.Sites)
	if err != nil {
		return err
	}
	return runXRay(ctx, x.Title, x.QueryOptions, platforms)
}

func (p *PlatformCmd) Run(ctx *Context) error {
	return runXRay(ctx, p.Title, p.QueryOptions, []models.Platform{p.Platform})
}

func runXRay(ctx *Context, title string, opts QueryOptions, platforms []models.Platform) error {
	params, err := resolveParams(ctx, title, opts)
	if err != nil {
		return err
	}

	engine := xray.NewEngine()
	queries := filterByPlatforms(engine.GenerateAll(params), platforms)
	ctx.Logger.Debug().Int("queries", len(queries)).Str("job_title", params.JobTitle).Msg("generated x-ray queries")

	return writeQueries(ctx, queries, opts)
}

func parsePlatforms(sitesArg string) ([]models.Platform, error) {
	requested := config.SplitCSV(sitesArg)
	if len(requested) == 0 || (len(requested) == 1 && strings.EqualFold(requested[0], "all")) {
		return nil, nil
	}

	platforms := make([]models.Platform, 0, len(requested))
	for _, site := range requested {
		platform, err := models.ParsePlatform(site)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, platform)
	}
	return platforms, nil
}
