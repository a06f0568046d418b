package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// CompanyInfo is the structured-family payload for the about-page company
// section.
type CompanyInfo struct {
	Name    string   `json:"name" yaml:"name"`
	Founder string   `json:"founder" yaml:"founder"`
	Fields  []string `json:"fields" yaml:"fields"`
}

func (c CompanyInfo) withDefaults(def CompanyInfo) CompanyInfo {
	merged := c
	if merged.Name == "" {
		merged.Name = def.Name
	}
	if merged.Founder == "" {
		merged.Founder = def.Founder
	}
	if len(merged.Fields) == 0 {
		merged.Fields = def.Fields
	}
	return merged
}

// EducationEntry is one row of the about-page education section.
type EducationEntry struct {
	Degree      string `json:"degree" yaml:"degree"`
	Field       string `json:"field" yaml:"field"`
	Institution string `json:"institution" yaml:"institution"`
}

type defaultEntry struct {
	Page      string           `yaml:"page"`
	Section   string           `yaml:"section"`
	Title     string           `yaml:"title"`
	Content   string           `yaml:"content"`
	Items     []string         `yaml:"items"`
	Company   *CompanyInfo     `yaml:"company"`
	Education []EducationEntry `yaml:"education"`
}

type defaultsKey struct {
	page    string
	section string
	title   string
}

// Defaults is the declarative fallback table, loaded once at process start
// and consumed read-only afterwards.
type Defaults struct {
	entries map[defaultsKey]defaultEntry
}

// LoadDefaults parses the embedded defaults table.
func LoadDefaults() (*Defaults, error) {
	var entries []defaultEntry
	if err := yaml.Unmarshal(defaultsYAML, &entries); err != nil {
		return nil, fmt.Errorf("parse defaults table: %w", err)
	}

	table := &Defaults{entries: make(map[defaultsKey]defaultEntry, len(entries))}
	for _, e := range entries {
		if e.Page == "" || e.Section == "" {
			return nil, fmt.Errorf("defaults entry missing page or section: %+v", e)
		}
		table.entries[defaultsKey{e.Page, e.Section, e.Title}] = e
	}
	return table, nil
}

// Text returns the plain fallback value for (page, section, title), or empty
// when the table has no opinion.
func (d *Defaults) Text(page, section, title string) string {
	return d.entries[defaultsKey{page, section, title}].Content
}

// Items returns the fallback list items for a list-family section.
func (d *Defaults) Items(page, section string) []string {
	return d.entries[defaultsKey{page, section, ""}].Items
}

// Company returns the fallback company details.
func (d *Defaults) Company() CompanyInfo {
	if e := d.entries[defaultsKey{"about", "company", ""}]; e.Company != nil {
		return *e.Company
	}
	return CompanyInfo{}
}

// Education returns the fallback education entries.
func (d *Defaults) Education() []EducationEntry {
	return d.entries[defaultsKey{"about", "education", ""}].Education
}
