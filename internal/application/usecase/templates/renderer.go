// Package templates renders the HTML and plain-text bodies of the report emails.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

const (
	DailyReport = "daily_report"
	TestEmail   = "test_email"
)

var funcs = map[string]interface{}{
	"upper": strings.ToUpper,
}

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.New("email").Funcs(funcs).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.New("email").Funcs(funcs).ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// MustNewRenderer is NewRenderer for package-level initialisation; the templates are embedded.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render renders both HTML and text versions of a template.
func (r *Renderer) Render(templateName string, data interface{}) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", templateName, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// Totals are the pre-formatted summary cards.
type Totals struct {
	TotalAmount string
	NetSales    string
	TotalTax    string
	Count       int
}

// TransactionRow is one line of the email's transaction table.
type TransactionRow struct {
	Receipt string
	Time    string
	Amount  string
	Tax     string
	Status  string
	Refund  bool
}

// DailyReportData feeds daily_report.html and daily_report.txt.
type DailyReportData struct {
	Brand            string
	DashboardName    string
	Date             string
	From             string
	GeneratedAt      string
	Totals           Totals
	Transactions     []TransactionRow
	TransactionCount int
}

// TestEmailData feeds test_email.html and test_email.txt.
type TestEmailData struct {
	Brand      string
	Transport  string
	Host       string
	Port       int
	From       string
	Recipients int
}
