package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// PDFRenderer prints a markdown report document to PDF through headless
// Chromium. It is a pure layout collaborator: it takes the document text
// and knows nothing about how it was derived.
type PDFRenderer struct {
	chromePath string
}

// NewPDFRenderer creates a renderer, locating a Chromium binary if present
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{
		chromePath: detectChromePath(),
	}
}

// Render converts the markdown document to an A4 portrait PDF
func (r *PDFRenderer) Render(ctx context.Context, markdown string) ([]byte, error) {
	htmlDoc, err := BuildHTML(markdown)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

const reportCSS = `body{font-family:Helvetica,Arial,sans-serif;color:#2B2B2B;line-height:1.5;max-width:760px;margin:0 auto;}
h1{color:#0078D4;font-size:26px;}
h2{color:#2B2B2B;font-size:19px;margin-top:1.6em;break-after:avoid;}
strong{color:#1c1917;}
ol li,ul li{margin-bottom:0.5em;}
hr{border:0;border-top:1px solid #d6d3d1;margin:2em 0 1em;}
hr+p{font-size:11px;color:#999;}
h2[data-page-break-before="true"]{break-before:page;page-break-before:always;}
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}`

// BuildHTML renders the markdown report into a self-contained printable
// HTML document. Every section heading after the summary starts a new page.
func BuildHTML(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	contentHTML := applyPrintLayoutHooks(content.String())

	return "<!doctype html><html><head><meta charset='utf-8'><title>Readiness Report</title>" +
		"<style>" + reportCSS + "</style></head><body>" +
		contentHTML +
		"</body></html>", nil
}

// Headings that begin a fresh page in the printed report
var pageBreakHeadings = []string{
	"Section Analysis",
	"Key Business Insights",
	"Strategic Recommendations",
	"Next Steps",
}

func applyPrintLayoutHooks(contentHTML string) string {
	out := contentHTML
	for _, heading := range pageBreakHeadings {
		out = strings.Replace(out,
			"<h2>"+heading+"</h2>",
			`<h2 data-page-break-before="true">`+heading+"</h2>", 1)
	}
	return out
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
