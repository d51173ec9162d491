package cmd

import (
	"os"

	"github.com/benchsales/xraycli/internal/boards"
	"github.com/benchsales/xraycli/internal/export"
)

// BoardsCmd prints direct search links for each job board's native
// search interface.
type BoardsCmd struct {
	Title string `arg:"" optional:"" help:"Job title. Optional when --profile is provided."`
	QueryOptions
}

func (b *BoardsCmd) Run(ctx *Context) error {
	params, err := resolveParams(ctx, b.Title, b.QueryOptions)
	if err != nil {
		return err
	}

	links := boards.All(params.JobTitle, params.Location)

	outputPath := resolveOutputPath(b.QueryOptions)
	format, err := resolveFormat(ctx, b.QueryOptions, outputPath)
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

	return export.WriteBoards(writer, links, format, writeOptions(ctx, b.QueryOptions, writer))
}
