// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/pdiddy/patent-lens/internal/pipeline"
	"github.com/pdiddy/patent-lens/internal/report"
	"github.com/pdiddy/patent-lens/internal/search"
	"github.com/pdiddy/patent-lens/pkg/types"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SearchHandler handles the search form, result pages, and exports.
type SearchHandler struct {
	client   pipeline.Searcher
	insights types.InsightConfig
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(client pipeline.Searcher, insightCfg types.InsightConfig) *SearchHandler {
	return &SearchHandler{client: client, insights: insightCfg}
}

// run executes one search for the q query parameter. Rejected input comes
// back as a 400 for the error view; fetch failures are part of the outcome.
func (h *SearchHandler) run(c fiber.Ctx) (*pipeline.Outcome, error) {
	q := search.ParseKeywords(c.Query("q", ""))

	out, err := pipeline.Run(c.Context(), h.client, h.insights, q)
	if err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			return nil, fiber.NewError(fiber.StatusBadRequest, verr.Error())
		}
		return nil, err
	}
	return out, nil
}

// Index renders the keyword form.
func (h *SearchHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

// Search runs the search and renders the result table with flash messages
// and links to the chart page and export downloads.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	out, err := h.run(c)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Title":          "Results",
		"Query":          strings.Join(out.Query.Keywords, ", "),
		"Records":        out.Records,
		"Found":          len(out.Records),
		"TotalAvailable": out.TotalAvailable,
		"WithoutYear":    out.Insights.WithoutYear,
		"SearchError":    out.SearchError,
	}
	if len(out.Warnings) > 0 {
		data["Warning"] = strings.Join(out.Warnings, " ")
	}
	return c.Render("results", data)
}

// Charts runs the search and streams the go-echarts page for its insights.
func (h *SearchHandler) Charts(c fiber.Ctx) error {
	out, err := h.run(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.WriteChartsHTML(&buf, out.Insights); err != nil {
		return fmt.Errorf("rendering charts: %w", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// ExportCSV runs the search and serves the records as a CSV download.
func (h *SearchHandler) ExportCSV(c fiber.Ctx) error {
	out, err := h.run(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, out.Records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.CSVFilename(time.Now())))
	return c.Send(buf.Bytes())
}

// ExportXLSX runs the search and serves the records as an XLSX download.
func (h *SearchHandler) ExportXLSX(c fiber.Ctx) error {
	out, err := h.run(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, out.Records); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.XLSXFilename(time.Now())))
	return c.Send(buf.Bytes())
}

// Health reports liveness.
func (h *SearchHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
