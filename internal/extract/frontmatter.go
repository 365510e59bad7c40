package extract

import (
	"strings"

	"github.com/adrg/frontmatter"
)

type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// Title returns the front matter title of a document, or "" when there is
// no front matter or it cannot be decoded. Metadata never affects parsing.
func Title(text string) string {
	var meta frontMatter
	if _, err := frontmatter.Parse(strings.NewReader(text), &meta); err != nil {
		return ""
	}
	return strings.TrimSpace(meta.Title)
}
