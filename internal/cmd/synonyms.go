package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/benchsales/xraycli/internal/xray"
)

// SynonymsCmd looks up alternative phrasings for a role title.
type SynonymsCmd struct {
	Title string `arg:"" help:"Job title to look up."`
}

func (s *SynonymsCmd) Run(ctx *Context) error {
	synonyms := xray.RoleSynonyms(s.Title)

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(synonyms)
	}

	for _, synonym := range synonyms {
		if _, err := fmt.Fprintln(ctx.Out, synonym); err != nil {
			return err
		}
	}
	return nil
}
