package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/benchsales/xraycli/internal/boards"
	"github.com/benchsales/xraycli/internal/export"
	"github.com/benchsales/xraycli/internal/models"
	"github.com/benchsales/xraycli/internal/xray"
)

// GenerateCmd produces the full search strategy for a consultant: every
// X-ray query, the hotlist discovery queries, direct board links, and the
// role synonyms to widen follow-up searches.
type GenerateCmd struct {
	Title string `arg:"" optional:"" help:"Job title. Optional when --profile is provided."`
	QueryOptions
}

type strategy struct {
	JobTitle       string               `json:"job_title"`
	Queries        []models.SearchQuery `json:"queries"`
	HotlistQueries []models.SearchQuery `json:"hotlist_queries"`
	BoardLinks     []boards.Link        `json:"board_links"`
	RoleSynonyms   []string             `json:"role_synonyms"`
	TotalQueries   int                  `json:"total_queries"`
}

func (g *GenerateCmd) Run(ctx *Context) error {
	params, err := resolveParams(ctx, g.Title, g.QueryOptions)
	if err != nil {
		return err
	}

	engine := xray.NewEngine()
	plan := strategy{
		JobTitle:       params.JobTitle,
		Queries:        engine.GenerateAll(params),
		HotlistQueries: engine.GenerateHotlist(params),
		BoardLinks:     boards.All(params.JobTitle, params.Location),
		RoleSynonyms:   engine.RoleSynonyms(params.JobTitle),
	}
	plan.TotalQueries = len(plan.Queries) + len(plan.HotlistQueries)

	outputPath := resolveOutputPath(g.QueryOptions)
	format, err := resolveFormat(ctx, g.QueryOptions, outputPath)
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

	if format == export.FormatJSON {
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			return err
		}
		printQuerySummary(ctx, append(plan.Queries, plan.HotlistQueries...))
		return nil
	}

	opts := writeOptions(ctx, g.QueryOptions, writer)
	combined := append(append([]models.SearchQuery{}, plan.Queries...), plan.HotlistQueries...)
	if err := export.WriteQueries(writer, combined, format, opts); err != nil {
		return err
	}

	if format == export.FormatMarkdown {
		if _, err := fmt.Fprintln(writer, "## Direct Board Links"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	} else if ctx.UI != nil && writer == ctx.Out {
		ctx.UI.Headingf("Direct Board Links")
	} else if _, err := fmt.Fprintln(writer, "Direct Board Links"); err != nil {
		return err
	}
	if err := export.WriteBoards(writer, plan.BoardLinks, format, opts); err != nil {
		return err
	}

	if len(plan.RoleSynonyms) > 1 {
		line := fmt.Sprintf("Also search for: %s", strings.Join(plan.RoleSynonyms[1:], ", "))
		if writer == ctx.Out && ctx.UI != nil {
			ctx.UI.Infof("\n%s", line)
		} else if _, err := fmt.Fprintf(writer, "\n%s\n", line); err != nil {
			return err
		}
	}

	printQuerySummary(ctx, combined)
	return nil
}
