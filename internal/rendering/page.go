package rendering

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spandey/resume-site/internal/course"
	"github.com/spandey/resume-site/internal/profile"
)

// OutputFile is the page written into the output directory.
const OutputFile = "index.html"

//go:embed template.html
var defaultTemplate string

// TemplateData is the data structure bound into the page template. All text
// fields are escaped by html/template on output, so course titles and URLs
// from the CSV or external file cannot inject markup.
type TemplateData struct {
	Profile        *profile.Profile
	TotalHours     float64
	Completed      []course.Record
	External       []course.Record
	Certifications []course.Record

	BuildID     string
	GeneratedAt time.Time
}

// InProgress returns the external records that are not completed, for the
// "Currently Learning" section.
func (d *TemplateData) InProgress() []course.Record {
	var out []course.Record
	for _, r := range d.External {
		if r.Status != course.StatusCompleted {
			out = append(out, r)
		}
	}
	return out
}

// RenderPage executes the page template against data and returns the HTML
// document. templatePath selects a caller-supplied template file; when empty
// the embedded default page is used.
func RenderPage(data *TemplateData, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now()
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// WritePage creates outDir (and parents) if absent and writes the document as
// index.html inside it, overwriting any previous page. Returns the path of
// the written file.
func WritePage(outDir, html string) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to create output directory %s", outDir),
			Cause:   err,
		}
	}

	outPath := filepath.Join(outDir, OutputFile)
	if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to write %s", outPath),
			Cause:   err,
		}
	}
	return outPath, nil
}

// parseTemplate parses the template file at templatePath, or the embedded
// default when the path is empty.
func parseTemplate(templatePath string) (*template.Template, error) {
	if templatePath == "" {
		tmpl, err := template.New("resume").Parse(defaultTemplate)
		if err != nil {
			return nil, &TemplateError{
				Message: "failed to parse embedded template",
				Cause:   err,
			}
		}
		return tmpl, nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New(filepath.Base(templatePath)).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}
