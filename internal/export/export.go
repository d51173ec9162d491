package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/benchsales/xraycli/internal/boards"
	"github.com/benchsales/xraycli/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

// Render order for query categories. Queries with an unset category fall
// into "General".
var categoryOrder = []string{
	models.CategoryJobSearch,
	models.CategoryVendorHunt,
	models.CategoryContactFind,
	"",
}

var categoryTitles = map[string]string{
	models.CategoryJobSearch:   "Job Searches",
	models.CategoryVendorHunt:  "Vendor Hunting",
	models.CategoryContactFind: "Contact Finding",
	"":                         "General",
}

// WriteQueries renders generated queries. Table and Markdown output group
// by category and sort by priority (stable, so emission order breaks
// ties); CSV, TSV, and JSON keep the engine's raw order.
func WriteQueries(w io.Writer, queries []models.SearchQuery, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, queries)
	case FormatCSV:
		return writeCSV(w, queries, ',')
	case FormatTSV:
		return writeCSV(w, queries, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, queries)
	default:
		return writeTable(w, queries, opts)
	}
}

func writeJSON(w io.Writer, queries []models.SearchQuery) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(queries)
}

func writeCSV(w io.Writer, queries []models.SearchQuery, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, query := range queries {
		if err := writer.Write(csvRow(query)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, queries []models.SearchQuery, opts WriteOptions) error {
	output := termenv.NewOutput(w)
	for _, category := range categoryOrder {
		grouped := filterCategory(queries, category)
		if len(grouped) == 0 {
			continue
		}
		sortByPriority(grouped)

		heading := categoryTitles[category]
		if opts.ColorEnabled {
			heading = output.String(heading).Bold().String()
		}
		if _, err := fmt.Fprintf(w, "%s\n", heading); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
		for _, query := range grouped {
			fmt.Fprintln(tw, strings.Join(tableRow(query, output, opts), "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdown(w io.Writer, queries []models.SearchQuery) error {
	if len(queries) == 0 {
		_, err := fmt.Fprintln(w, "No queries.")
		return err
	}
	for _, category := range categoryOrder {
		grouped := filterCategory(queries, category)
		if len(grouped) == 0 {
			continue
		}
		sortByPriority(grouped)

		if _, err := fmt.Fprintf(w, "## %s\n\n", categoryTitles[category]); err != nil {
			return err
		}
		for _, query := range grouped {
			lines := []string{
				fmt.Sprintf("- **%s** (P%d, %s)", safe(query.Description), query.Priority, query.Platform),
				fmt.Sprintf("  Query: `%s`", safe(query.Query)),
				fmt.Sprintf("  URL: [Run search](<%s>)", safe(query.SearchURL)),
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteBoards renders direct job-board links.
func WriteBoards(w io.Writer, links []boards.Link, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(links)
	case FormatCSV, FormatTSV:
		delim := ','
		if format == FormatTSV {
			delim = '\t'
		}
		writer := csv.NewWriter(w)
		writer.Comma = delim
		if err := writer.Write([]string{"platform", "url", "description"}); err != nil {
			return err
		}
		for _, link := range links {
			if err := writer.Write([]string{link.Platform, link.URL, link.Description}); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	case FormatMarkdown:
		for _, link := range links {
			if _, err := fmt.Fprintf(w, "- [%s](<%s>): %s\n", safe(link.Platform), safe(link.URL), safe(link.Description)); err != nil {
				return err
			}
		}
		return nil
	default:
		output := termenv.NewOutput(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "platform\turl")
		for _, link := range links {
			fmt.Fprintf(tw, "%s\t%s\n", safe(link.Platform), displayURL(link.URL, output, opts))
		}
		return tw.Flush()
	}
}

func filterCategory(queries []models.SearchQuery, category string) []models.SearchQuery {
	var out []models.SearchQuery
	for _, query := range queries {
		if query.Category == category {
			out = append(out, query)
		}
	}
	return out
}

func sortByPriority(queries []models.SearchQuery) {
	sort.SliceStable(queries, func(i, j int) bool {
		return queries[i].Priority < queries[j].Priority
	})
}

func csvHeader() []string {
	return []string{
		"platform",
		"category",
		"priority",
		"description",
		"query",
		"search_url",
	}
}

func csvRow(query models.SearchQuery) []string {
	return []string{
		string(query.Platform),
		query.Category,
		strconv.Itoa(query.Priority),
		query.Description,
		query.Query,
		query.SearchURL,
	}
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func tableHeader() []string {
	return []string{
		"platform",
		"pri",
		"description",
		"url",
	}
}

func tableRow(query models.SearchQuery, output *termenv.Output, opts WriteOptions) []string {
	return []string{
		string(query.Platform),
		strconv.Itoa(query.Priority),
		safe(query.Description),
		displayURL(query.SearchURL, output, opts),
	}
}

func displayURL(raw string, output *termenv.Output, opts WriteOptions) string {
	const linkColor = "#87CEEB"

	target := safe(raw)
	if target == "" {
		return "-"
	}
	display := target
	if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
		display = shortURLLabel(target)
	}
	if opts.ColorEnabled {
		display = output.String(display).Foreground(output.Color(linkColor)).String()
	}
	if opts.Hyperlinks {
		display = hyperlink(target, display)
	}
	return display
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
