package render

import (
	"bytes"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/jbdamask/botcmd/pkg/commands"
)

// HTML renders the Markdown help block as an HTML fragment.
var HTML commands.Renderer = commands.RendererFunc(renderHTML)

var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownInstance
}

func renderHTML(md *commands.Metadata, commandName string) string {
	return MarkdownToHTML(renderMarkdown(md, commandName))
}

// MarkdownToHTML converts a markdown string to HTML. The source is returned
// unchanged if conversion fails.
func MarkdownToHTML(source string) string {
	var buf bytes.Buffer
	if err := getMarkdown().Convert([]byte(source), &buf); err != nil {
		return source
	}
	return strings.TrimRight(buf.String(), "\n")
}
