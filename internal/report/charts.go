// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pdiddy/patent-lens/pkg/types"
)

// YearsChart renders the patents-per-year distribution as a bar chart with
// years ascending on the x axis.
func YearsChart(set types.InsightSet) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Patents by Year"}))

	xs := make([]string, len(set.Years))
	ys := make([]opts.BarData, len(set.Years))
	for i, yc := range set.Years {
		xs[i] = strconv.Itoa(yc.Year)
		ys[i] = opts.BarData{Value: yc.Count}
	}
	bar.SetXAxis(xs).AddSeries("Patents", ys)
	return bar
}

// CountriesChart renders the top assignee countries as a bar chart, count
// descending left to right.
func CountriesChart(set types.InsightSet) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Top 10 Countries by Number of Patents"}))

	xs := make([]string, len(set.Countries))
	ys := make([]opts.BarData, len(set.Countries))
	for i, cc := range set.Countries {
		xs[i] = DisplayCountry(cc.Country)
		ys[i] = opts.BarData{Value: cc.Count}
	}
	bar.SetXAxis(xs).AddSeries("Patents", ys)
	return bar
}

// WordCloudChart renders the abstract keyword distribution.
func WordCloudChart(set types.InsightSet) *charts.WordCloud {
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Abstract Keyword Cloud"}))

	data := make([]opts.WordCloudData, len(set.Words))
	for i, w := range set.Words {
		data[i] = opts.WordCloudData{Name: w.Word, Value: w.Count}
	}
	wc.AddSeries("Keywords", data)
	return wc
}

// WriteChartsHTML renders all three charts into one self-contained HTML page.
func WriteChartsHTML(w io.Writer, set types.InsightSet) error {
	page := components.NewPage()
	page.PageTitle = "Patent Lens"
	page.AddCharts(YearsChart(set), CountriesChart(set), WordCloudChart(set))
	return page.Render(w)
}

// WriteChartFiles writes years.html, countries.html, wordcloud.html, and the
// combined dashboard.html into dir, creating it if needed.
func WriteChartFiles(dir string, set types.InsightSet) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating charts directory: %w", err)
	}

	files := []struct {
		name   string
		render func(io.Writer) error
	}{
		{"years.html", YearsChart(set).Render},
		{"countries.html", CountriesChart(set).Render},
		{"wordcloud.html", WordCloudChart(set).Render},
		{"dashboard.html", func(w io.Writer) error { return WriteChartsHTML(w, set) }},
	}
	for _, cf := range files {
		f, err := os.Create(filepath.Join(dir, cf.name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", cf.name, err)
		}
		if err := cf.render(f); err != nil {
			f.Close()
			return fmt.Errorf("rendering %s: %w", cf.name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", cf.name, err)
		}
	}
	return nil
}

// DisplayCountry maps the empty assignee country to a printable label.
func DisplayCountry(c string) string {
	if c == "" {
		return "(none)"
	}
	return c
}
