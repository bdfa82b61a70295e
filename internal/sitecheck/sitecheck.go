// Package sitecheck runs structural checks on a generated resume page so a
// broken template or bad data surfaces before the page is published.
package sitecheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Violation describes one failed check.
type Violation struct {
	Code    string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

// requiredSections are the page sections every rendered resume must carry.
var requiredSections = []string{"education", "certifications"}

// CheckFile parses the page at path and returns all violations found. An
// empty slice means the page passed.
func CheckFile(path string) ([]Violation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}
	return Check(doc), nil
}

// Check inspects a parsed document.
func Check(doc *goquery.Document) []Violation {
	var violations []Violation

	if doc.Find(`meta[charset]`).Length() == 0 {
		violations = append(violations, Violation{
			Code:    "missing_charset",
			Message: "page declares no charset meta tag",
		})
	}

	if strings.TrimSpace(doc.Find("title").Text()) == "" {
		violations = append(violations, Violation{
			Code:    "empty_title",
			Message: "page has no document title",
		})
	}

	if strings.TrimSpace(doc.Find("h1").First().Text()) == "" {
		violations = append(violations, Violation{
			Code:    "missing_name_heading",
			Message: "page has no top-level name heading",
		})
	}

	for _, id := range requiredSections {
		if doc.Find("section#"+id).Length() == 0 {
			violations = append(violations, Violation{
				Code:    "missing_section",
				Message: fmt.Sprintf("page has no #%s section", id),
			})
		}
	}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			violations = append(violations, Violation{
				Code:    "empty_link",
				Message: fmt.Sprintf("link %q has no href", strings.TrimSpace(s.Text())),
			})
		}
	})

	return violations
}
