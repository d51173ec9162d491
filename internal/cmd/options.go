package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benchsales/xraycli/internal/config"
	"github.com/benchsales/xraycli/internal/export"
	"github.com/benchsales/xraycli/internal/models"
	"github.com/benchsales/xraycli/internal/profile"
	"github.com/benchsales/xraycli/internal/xray"
	"github.com/muesli/termenv"
)

// QueryOptions are the flags shared by every query-generating command.
type QueryOptions struct {
	Skills          string  `help:"Comma-separated primary skills (order matters; top 3-4 drive query density)." env:"XRAYCLI_SKILLS"`
	SecondarySkills string  `help:"Comma-separated secondary skills."`
	Location        string  `help:"Target location, e.g. \"Dallas, TX\"." env:"XRAYCLI_DEFAULT_LOCATION"`
	Visa            string  `help:"Visa status, e.g. H1B, GC, USC." env:"XRAYCLI_DEFAULT_VISA"`
	EmploymentTypes string  `help:"Comma-separated employment types (default: C2C)."`
	Remote          bool    `help:"Consultant accepts remote roles."`
	Years           float64 `help:"Years of experience (informational)."`
	Rate            string  `help:"Rate range (informational), e.g. \"$60-70/hr\"."`
	Profile         string  `help:"Path to a consultant profile JSON file; flags override its fields."`
	Format          string  `help:"Output format: csv, json, md, tsv." enum:",csv,json,md,tsv" default:""`
	Links           string  `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output          string  `name:"output" short:"o" help:"Write output to a file."`
	Out             string  `name:"out" help:"Alias for --output."`
	File            string  `name:"file" help:"Alias for --output."`
}

// resolveParams builds engine parameters from the profile file, flags, and
// config defaults, in increasing precedence: config < profile < flags.
func resolveParams(ctx *Context, title string, opts QueryOptions) (models.SearchParams, error) {
	var params models.SearchParams

	if strings.TrimSpace(opts.Profile) != "" {
		consultant, err := profile.Read(opts.Profile)
		if err != nil {
			return params, fmt.Errorf("read --profile: %w", err)
		}
		params = consultant.Params()
		ctx.Logger.Debug().Str("profile", opts.Profile).Str("job_title", params.JobTitle).Msg("loaded consultant profile")
	}

	if strings.TrimSpace(title) != "" {
		params.JobTitle = strings.TrimSpace(title)
	}
	if strings.TrimSpace(opts.Skills) != "" {
		params.PrimarySkills = config.SplitCSV(opts.Skills)
	}
	if strings.TrimSpace(opts.SecondarySkills) != "" {
		params.SecondarySkills = config.SplitCSV(opts.SecondarySkills)
	}
	params.Location = firstNonEmpty(opts.Location, params.Location, ctx.Config.DefaultLocation)
	params.VisaStatus = firstNonEmpty(opts.Visa, params.VisaStatus, ctx.Config.DefaultVisa)
	if opts.Remote {
		params.RemoteOK = true
	}
	if opts.Years > 0 {
		params.ExperienceYears = opts.Years
	}
	if strings.TrimSpace(opts.Rate) != "" {
		params.RateRange = opts.Rate
	}
	if strings.TrimSpace(opts.EmploymentTypes) != "" {
		params.EmploymentTypes = config.SplitCSV(opts.EmploymentTypes)
	}
	if len(params.EmploymentTypes) == 0 {
		params.EmploymentTypes = ctx.Config.DefaultEmploymentTypes
	}
	if len(params.EmploymentTypes) == 0 {
		params.EmploymentTypes = models.DefaultEmploymentTypes()
	}

	if params.JobTitle == "" {
		return params, fmt.Errorf("a job title is required (positional argument or --profile)")
	}

	return params, nil
}

// writeQueries resolves the output destination and format, renders the
// queries, and prints a summary line to stderr.
func writeQueries(ctx *Context, queries []models.SearchQuery, opts QueryOptions) error {
	outputPath := resolveOutputPath(opts)
	format, err := resolveFormat(ctx, opts, outputPath)
	if err != nil {
		return err
	}

	writer := ctx.Out
	var file *os.File
	if outputPath != "" {
		file, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	if err := export.WriteQueries(writer, queries, format, writeOptions(ctx, opts, writer)); err != nil {
		return err
	}

	printQuerySummary(ctx, queries)
	return nil
}

func writeOptions(ctx *Context, opts QueryOptions, writer io.Writer) export.WriteOptions {
	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && isTTY(writer)
	linkStyle := export.LinkStyleFull
	if strings.EqualFold(opts.Links, string(export.LinkStyleShort)) {
		linkStyle = export.LinkStyleShort
	}
	return export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
	}
}

func printQuerySummary(ctx *Context, queries []models.SearchQuery) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(ctx.Err, "%s\n", formatQuerySummary(queries))
}

func formatQuerySummary(queries []models.SearchQuery) string {
	platforms := map[models.Platform]struct{}{}
	c2c := 0
	for _, query := range queries {
		platforms[query.Platform] = struct{}{}
		if xray.HasContractTerm(query.Query) {
			c2c++
		}
	}
	return fmt.Sprintf("summary: queries=%d c2c_terms=%d platforms=%d", len(queries), c2c, len(platforms))
}

func filterByPlatforms(queries []models.SearchQuery, platforms []models.Platform) []models.SearchQuery {
	if len(platforms) == 0 {
		return queries
	}
	wanted := make(map[models.Platform]struct{}, len(platforms))
	for _, platform := range platforms {
		wanted[platform] = struct{}{}
	}
	out := make([]models.SearchQuery, 0, len(queries))
	for _, query := range queries {
		if _, ok := wanted[query.Platform]; ok {
			out = append(out, query)
		}
	}
	return out
}

func resolveOutputPath(opts QueryOptions) string {
	if opts.Output != "" {
		return opts.Output
	}
	if opts.Out != "" {
		return opts.Out
	}
	return opts.File
}

func resolveFormat(ctx *Context, opts QueryOptions, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if opts.Format != "" {
		return parseFormat(opts.Format)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
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

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
