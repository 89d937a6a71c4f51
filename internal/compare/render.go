package compare

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Report formats understood by Render.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the supported report formats.
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatYAML}
}

// Render writes r to w in the named format.
func Render(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatTable:
		renderTable(w, r)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func renderTable(w io.Writer, r *Report) {
	detail := tablewriter.NewWriter(w)
	detail.SetAutoFormatHeaders(false)
	detail.SetHeader([]string{"probe", "dataset", "key", "linear", "linear cmp", "binary", "binary cmp", "agree"})
	for _, pr := range r.Probes {
		for _, o := range pr.Outcomes {
			detail.Append([]string{
				pr.Probe,
				pr.Dataset,
				strconv.Itoa(o.Key),
				o.Linear.String(),
				strconv.Itoa(o.Linear.Comparisons),
				o.Binary.String(),
				strconv.Itoa(o.Binary.Comparisons),
				yesNo(o.Agree),
			})
		}
	}
	detail.Render()

	summary := tablewriter.NewWriter(w)
	summary.SetAutoFormatHeaders(false)
	summary.SetHeader([]string{"probe", "dataset", "size", "keys", "linear cmp", "binary cmp", "disagreements"})
	for _, pr := range r.Probes {
		summary.Append([]string{
			pr.Probe,
			pr.Dataset,
			strconv.Itoa(pr.Size),
			strconv.Itoa(len(pr.Outcomes)),
			strconv.Itoa(pr.LinearTotal),
			strconv.Itoa(pr.BinaryTotal),
			strconv.Itoa(pr.Disagreements),
		})
	}
	summary.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
