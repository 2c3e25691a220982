// Package cli renders search responses for the shohin command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/shohin/internal/image"
	"github.com/hyperjump/shohin/internal/models"
	"github.com/hyperjump/shohin/pkg/utils"
)

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is a card grid for people (default).
	OutputText SearchOutputFormat = "text"
	// OutputCompact is one line per result.
	OutputCompact SearchOutputFormat = "compact"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
)

const (
	// PromptMessage is shown when the query is empty.
	PromptMessage = "What are you looking for? Search e.g. 'iphone', 'watch'..."
	// NoMatchMessage is shown when nothing matched.
	NoMatchMessage = "No products found matching your search."
)

// DisplayOptions controls text rendering.
type DisplayOptions struct {
	Columns    int
	TitleWidth int
	Currency   string
	// Images, when set, lists a resolved image URL per result under the grid.
	Images *image.Resolver
}

func (o DisplayOptions) withDefaults() DisplayOptions {
	if o.Columns <= 0 {
		o.Columns = 4
	}
	if o.TitleWidth <= 0 {
		o.TitleWidth = 40
	}
	if o.Currency == "" {
		o.Currency = "₹"
	}
	return o
}

// ParseFormat maps a flag value to a format; unknown values fall back to text.
func ParseFormat(s string) SearchOutputFormat {
	switch SearchOutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case OutputJSON:
		return OutputJSON
	case OutputCompact:
		return OutputCompact
	default:
		return OutputText
	}
}

// WriteSearchResults writes response to w in the given format.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format SearchOutputFormat, opts DisplayOptions) error {
	opts = opts.withDefaults()
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	case OutputCompact:
		return writeCompact(w, response, opts)
	default:
		return writeText(w, response, opts)
	}
}

// FormatPrice renders amount with a currency symbol and thousands separators.
func FormatPrice(currency string, amount float64) string {
	return currency + utils.GroupThousands(amount)
}

func writeStatus(w io.Writer, response *models.SearchResponse) (bool, error) {
	switch response.Status {
	case models.StatusNoQuery:
		_, err := fmt.Fprintln(w, PromptMessage)
		return true, err
	case models.StatusNoMatch:
		if _, err := fmt.Fprintln(w, NoMatchMessage); err != nil {
			return true, err
		}
		if len(response.Suggestions) > 0 {
			_, err := fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(response.Suggestions, ", "))
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func writeCompact(w io.Writer, response *models.SearchResponse, opts DisplayOptions) error {
	if done, err := writeStatus(w, response); done {
		return err
	}
	for _, r := range response.Results {
		if _, err := fmt.Fprintf(w, "%d. %s | %s | %s\n",
			r.Rank, r.Product.Name, r.Product.Brand, FormatPrice(opts.Currency, r.Product.Price)); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, response *models.SearchResponse, opts DisplayOptions) error {
	if done, err := writeStatus(w, response); done {
		return err
	}

	var b strings.Builder
	match := "matches"
	if response.Fuzzy {
		match = "closest match"
	}
	fmt.Fprintf(&b, "\nShowing %d of %d %s for %q (%dms)\n\n",
		len(response.Results), response.Total, match, response.Query, response.QueryTime)

	// Room for the title, the ellipsis, and a gap.
	width := opts.TitleWidth + 3
	rule := strings.Repeat("─", width*opts.Columns+2*(opts.Columns-1))
	for start := 0; start < len(response.Results); start += opts.Columns {
		end := min(start+opts.Columns, len(response.Results))
		row := response.Results[start:end]

		b.WriteString(rule)
		b.WriteByte('\n')
		cells := [][]string{}
		for _, r := range row {
			cells = append(cells, []string{
				utils.Truncate(r.Product.Name, opts.TitleWidth),
				FormatPrice(opts.Currency, r.Product.Price),
				utils.Truncate(fmt.Sprintf("#%d %s", r.Rank, r.Product.Brand), opts.TitleWidth),
			})
		}
		for line := 0; line < 3; line++ {
			parts := make([]string, len(cells))
			for i, c := range cells {
				parts[i] = utils.PadRight(c[line], width)
			}
			b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
			b.WriteByte('\n')
		}
	}
	if len(response.Results) > 0 {
		b.WriteString(rule)
		b.WriteByte('\n')
	}

	if opts.Images != nil && len(response.Results) > 0 {
		b.WriteString("\nImages:\n")
		for _, r := range response.Results {
			fmt.Fprintf(&b, "  #%d %s\n", r.Rank, opts.Images.Normalize(r.Product.ImageRef))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
