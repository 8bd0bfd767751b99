package usecase

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"toc-generator/internal/domain/model"
)

const (
	tableOpen  = "<table>\n  <tbody>\n"
	tableClose = "  </tbody>\n</table>"
	separator  = "<br>\n"
)

// RendererConfig holds the fixed parts of generated links.
type RendererConfig struct {
	// BaseURL is the browsable location of the source root, without trailing slash.
	BaseURL string
	// Extension is appended to record names in file links.
	Extension string
	// ProblemSiteName and ProblemSiteURL label the title column header.
	ProblemSiteName string
	ProblemSiteURL  string
	Labels          model.LabelMap
}

// Renderer produces the report document.
type Renderer struct {
	cfg RendererConfig
}

// NewRenderer constructs a Renderer.
func NewRenderer(cfg RendererConfig) *Renderer {
	if cfg.Labels == nil {
		cfg.Labels = model.LabelMap{}
	}
	return &Renderer{cfg: cfg}
}

// Render writes the template lines, the statistics table and the detail table.
// records must already be sorted.
func (r *Renderer) Render(template []string, records []model.Record, stats model.Stats) []byte {
	var buf bytes.Buffer

	for _, line := range template {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	r.writeStatistics(&buf, stats)
	r.writeDetails(&buf, records)

	return buf.Bytes()
}

func (r *Renderer) writeStatistics(buf *bytes.Buffer, stats model.Stats) {
	buf.WriteString(tableOpen)
	buf.WriteString("    <tr>\n" +
		"      <th>No. </th>\n" +
		"      <th>Category</th>\n" +
		"      <th>Sum</th>\n" +
		"      <th>Easy</th>\n" +
		"      <th>Medium</th>\n" +
		"      <th>Hard</th>\n" +
		"    </tr>\n")

	for i, c := range stats.Categories {
		fmt.Fprintf(buf, "    <tr>\n"+
			"      <td>%d</td>\n"+
			"      <td><a href=\"%s\">%s</a></td>\n"+
			"      <td>%d</td>\n"+
			"      <td>%d</td>\n"+
			"      <td>%d</td>\n"+
			"      <td>%d</td>\n"+
			"    </tr>\n",
			i+1, esc(r.categoryURL(c.Label)), esc(c.DisplayName), c.Total, c.Easy, c.Medium, c.Hard)
	}

	t := stats.Total
	fmt.Fprintf(buf, "    <tr>\n"+
		"      <td></td>\n"+
		"      <td><b>Total</b></td>\n"+
		"      <td>%d</td>\n"+
		"      <td>%d</td>\n"+
		"      <td>%d</td>\n"+
		"      <td>%d</td>\n"+
		"    </tr>\n",
		t.Total, t.Easy, t.Medium, t.Hard)

	buf.WriteString(tableClose)
	buf.WriteString(separator)
}

func (r *Renderer) writeDetails(buf *bytes.Buffer, records []model.Record) {
	buf.WriteString(tableOpen)
	fmt.Fprintf(buf, "    <tr>\n"+
		"      <th>No. (Link to <a href=\"%s\">src</a>)</th>\n"+
		"      <th>Difficulty</th>\n"+
		"      <th>Title (Link to <a href=\"%s\">%s</a>)</th>\n"+
		"      <th>Category</th>\n"+
		"      <th>Note</th>\n"+
		"    </tr>\n",
		esc(r.cfg.BaseURL), esc(r.cfg.ProblemSiteURL), esc(r.cfg.ProblemSiteName))

	for _, rec := range records {
		display, _ := r.cfg.Labels.DisplayName(rec.Label)
		fmt.Fprintf(buf, "    <tr>\n"+
			"      <td><a href=\"%s\">%s</a></td>\n"+
			"      <td>%s</td>\n"+
			"      <td><a href=\"%s\">%s</a></td>\n"+
			"      <td><a href=\"%s\">%s</a></td>\n"+
			"      <td></td>\n"+
			"    </tr>\n",
			esc(r.fileURL(rec)), esc(rec.Name),
			esc(rec.Difficulty),
			esc(rec.Link), esc(rec.Title),
			esc(r.categoryURL(rec.Label)), esc(display))
	}

	buf.WriteString(tableClose)
}

func (r *Renderer) categoryURL(label string) string {
	return r.cfg.BaseURL + "/" + label
}

func (r *Renderer) fileURL(rec model.Record) string {
	return r.cfg.BaseURL + "/" + rec.Label + "/" + rec.Name + r.cfg.Extension
}

func esc(s string) string {
	return html.EscapeString(s)
}
