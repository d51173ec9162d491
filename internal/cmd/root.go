package cmd

import (
	"github.com/alecthomas/kong"
	"github.com/benchsales/xraycli/internal/models"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version  VersionCmd  `cmd:"" help:"Print version."`
	Config   ConfigCmd   `cmd:"" help:"Manage configuration."`
	Generate GenerateCmd `cmd:"" help:"Full search strategy: X-ray queries, hotlists, board links, synonyms."`
	XRay     XRayCmd     `cmd:"" name:"xray" help:"Generate X-ray queries."`
	Hotlist  HotlistCmd  `cmd:"" help:"Generate hotlist discovery queries."`
	Boards   BoardsCmd   `cmd:"" help:"Direct job board search links."`
	Synonyms SynonymsCmd `cmd:"" help:"Role title synonyms."`

	LinkedIn      PlatformCmd `cmd:"" name:"linkedin" help:"X-ray queries for LinkedIn."`
	Dice          PlatformCmd `cmd:"" name:"dice" help:"X-ray queries for Dice."`
	Indeed        PlatformCmd `cmd:"" name:"indeed" help:"X-ray queries for Indeed."`
	Monster       PlatformCmd `cmd:"" name:"monster" help:"X-ray queries for Monster."`
	CareerBuilder PlatformCmd `cmd:"" name:"careerbuilder" help:"X-ray queries for CareerBuilder."`
	ZipRecruiter  PlatformCmd `cmd:"" name:"ziprecruiter" help:"X-ray queries for ZipRecruiter."`
	TechFetch     PlatformCmd `cmd:"" name:"techfetch" help:"X-ray queries for TechFetch."`
	Google        PlatformCmd `cmd:"" name:"google" help:"Open-web X-ray queries."`
	CorpCorp      PlatformCmd `cmd:"" name:"corp-corp" help:"Corp-to-corp specific queries."`
}

func NewCLI() *CLI {
	return &CLI{
		LinkedIn:      PlatformCmd{Platform: models.PlatformLinkedIn},
		Dice:          PlatformCmd{Platform: models.PlatformDice},
		Indeed:        PlatformCmd{Platform: models.PlatformIndeed},
		Monster:       PlatformCmd{Platform: models.PlatformMonster},
		CareerBuilder: PlatformCmd{Platform: models.PlatformCareerBuilder},
		ZipRecruiter:  PlatformCmd{Platform: models.PlatformZipRecruiter},
		TechFetch:     PlatformCmd{Platform: models.PlatformTechFetch},
		Google:        PlatformCmd{Platform: models.PlatformGoogle},
		CorpCorp:      PlatformCmd{Platform: models.PlatformCorpCorp},
	}
}
