// Package profile provides the candidate profile rendered at the top of the
// page: a built-in default plus an optional JSON override file.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Education is a single education-history entry, most recent first.
type Education struct {
	Degree    string `json:"degree" validate:"required"`
	Institute string `json:"institute" validate:"required"`
	Score     string `json:"score,omitempty"`
	Year      string `json:"year"`
}

// Profile is the static candidate record. It is immutable for a given run;
// nothing downstream mutates it.
type Profile struct {
	Name    string `json:"name" validate:"required"`
	Program string `json:"program"`
	Batch   string `json:"batch"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	Education    []Education `json:"education" validate:"dive"`
	Positions    []string    `json:"positions_of_responsibility"`
	Achievements []string    `json:"achievements"`
	Activities   []string    `json:"activities"`
	Interests    []string    `json:"interests"`
}

// Default returns the built-in profile used when no override file is given.
func Default() *Profile {
	return &Profile{
		Name:    "Sourabh Pandey",
		Program: "MBA-HHM",
		Batch:   "2025–2027",
		Email:   "sourabh.p2027h@iimbg.ac.in",
		Phone:   "+91-8103867459",
		Address: "Indian Institute of Management Bodhgaya, Bihar",
		Education: []Education{
			{Degree: "MBA-HHM", Institute: "IIM Bodhgaya", Year: "2027"},
			{Degree: "B.Com", Institute: "J.H. P.G. College, Betul", Score: "68.7%", Year: "2024"},
			{Degree: "XII", Institute: "Little Flower Senior Secondary School, Betul", Score: "78.4%", Year: "2021"},
			{Degree: "X", Institute: "Little Flower Senior Secondary School, Betul", Score: "80.83%", Year: "2019"},
		},
		Positions: []string{
			"Project Group Leader — Led a team of 5 through the project lifecycle (2022).",
			"Consolidated findings into a cohesive report and presentation (2022).",
			"Ensured timely, high-quality submission of deliverables (2022).",
		},
		Achievements: []string{
			"Cleared SBI Clerk Prelims; 92+ percentile in General English (2025).",
			"HDFC Bank Survey: Proposed 5 improvements boosting NPS by 12% (2021).",
			"Comparative Financial Analysis: Benchmarked HDFC's capital adequacy vs peers (2023).",
		},
		Activities: []string{
			"Chess: Gold medalist in District Championship (2022).",
			"Vice-Captain, College Chess Team; 4th place at State-Level Tournament (2022).",
			"Represented university at National Level Chess; ranked 24/83 (2022).",
		},
		Interests: []string{"Badminton", "Swimming", "Reading Books"},
	}
}

// Load returns the profile for a run. An empty path returns the default. A
// non-empty path must exist and parse; its fields are applied on top of the
// default, so a partial override file only replaces what it sets. The result
// is validated before use.
func Load(path string) (*Profile, error) {
	p := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks required fields and field formats.
func (p *Profile) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}
