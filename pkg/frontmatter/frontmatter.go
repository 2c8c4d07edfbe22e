// Package frontmatter reads the YAML header a deck may carry in its first
// cell, as written by Quarto and Jupytext for reveal.js presentations.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
)

var frontmatterPattern = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---\s*(?:\r?\n(.*))?$`)

// Frontmatter represents the deck metadata at the top of a notebook
type Frontmatter struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Authors  Authors  `yaml:"author,omitempty"`
	Date     string   `yaml:"date,omitempty"`
	Tags     []string `yaml:"tags,flow,omitempty"`
	Keywords []string `yaml:"keywords,flow,omitempty"`
	Format   any      `yaml:"format,omitempty"`
}

// Authors accepts a single name, a list of names, or a list of
// {name: ...} mappings.
type Authors []string

func (a *Authors) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = Authors{node.Value}
		return nil
	case yaml.SequenceNode:
		var out Authors
		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				out = append(out, item.Value)
			case yaml.MappingNode:
				var named struct {
					Name string `yaml:"name"`
				}
				if err := item.Decode(&named); err != nil {
					return err
				}
				if named.Name != "" {
					out = append(out, named.Name)
				}
			}
		}
		*a = out
		return nil
	}
	return fmt.Errorf("line %d: author must be a string or a list", node.Line)
}

func (a Authors) String() string {
	return strings.Join(a, ", ")
}

// Parse extracts frontmatter from content and returns the parsed data and body
func Parse(content string) (*Frontmatter, string, error) {
	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		// No frontmatter found
		return nil, content, nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(matches[1]), &fm); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return &fm, matches[2], nil
}

// FromNotebook parses the header of doc's first cell. Only raw and markdown
// cells can carry one; it returns nil when there is none.
func FromNotebook(doc notebook.Document) (*Frontmatter, error) {
	if doc == nil || doc.CellCount() == 0 {
		return nil, nil
	}
	first := doc.CellAt(0)
	if !first.IsMarkup() {
		return nil, nil
	}
	fm, _, err := Parse(strings.TrimLeft(first.Source, " \t\r\n"))
	return fm, err
}

// RevealJS reports whether the header selects reveal.js output, either as
// `format: revealjs` or as a `revealjs:` key under format.
func (fm *Frontmatter) RevealJS() bool {
	switch f := fm.Format.(type) {
	case string:
		return f == "revealjs"
	case map[string]any:
		_, ok := f["revealjs"]
		return ok
	}
	return false
}

// AllTags merges tags and keywords without duplicates.
func (fm *Frontmatter) AllTags() []string {
	return MergeTags(fm.Tags, fm.Keywords)
}

// Apply copies the header fields a deck summary uses into deck.
func (fm *Frontmatter) Apply(deck *models.Deck) {
	if fm.Title != "" {
		deck.Title = fm.Title
	}
	deck.Author = fm.Authors.String()
	deck.Tags = fm.AllTags()
}

// MergeTags combines multiple tag sources and removes duplicates
func MergeTags(sources ...[]string) []string {
	seen := make(map[string]bool)
	result := []string{}

	for _, tags := range sources {
		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if tag != "" && !seen[tag] {
				seen[tag] = true
				result = append(result, tag)
			}
		}
	}

	return result
}
