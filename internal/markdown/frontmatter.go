package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and the Markdown body from source. Input
// without a front matter block returns empty metadata and the source as body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content and modification time. When stripFrontMatter is false the body
// is the unmodified source. ADF is left empty so callers can convert lazily.
func BuildDocument(path string, source []byte, modified time.Time, stripFrontMatter bool) (*interfaces.Document, error) {
	doc := &interfaces.Document{
		FilePath:     path,
		Body:         source,
		LastModified: modified,
	}
	if !stripFrontMatter {
		return doc, nil
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}
	doc.FrontMatter = meta
	doc.Body = body
	return doc, nil
}

type frontMatterEnvelope struct {
	Title   string         `yaml:"title"`
	Summary string         `yaml:"summary"`
	Tags    []string       `yaml:"tags"`
	Author  string         `yaml:"author"`
	Date    time.Time      `yaml:"date"`
	Custom  map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+5)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}

	return interfaces.FrontMatter{
		Title:   env.Title,
		Summary: env.Summary,
		Tags:    append([]string(nil), env.Tags...),
		Author:  env.Author,
		Date:    env.Date,
		Custom:  cloneMap(env.Custom),
		Raw:     raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
