package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// highlighter applies language-aware colouring to preview lines.
type highlighter struct {
	style *chroma.Style
}

func newHighlighter() *highlighter {
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	return &highlighter{style: style}
}

// Highlight colours a single line of code based on the file it came from.
func (h *highlighter) Highlight(line, filePath string) string {
	lexer := h.lexerFor(filePath)
	if lexer == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for _, token := range iterator.Tokens() {
		result.WriteString(h.styleToken(token))
	}
	return result.String()
}

func (h *highlighter) lexerFor(filePath string) chroma.Lexer {
	if filePath == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if lexer := lexers.Get(ext); lexer != nil {
		return lexer
	}
	if lexer := lexers.Get(filepath.Base(filePath)); lexer != nil {
		return lexer
	}

	switch ext {
	case ".go":
		return lexers.Get("go")
	case ".js", ".jsx", ".mjs":
		return lexers.Get("javascript")
	case ".ts", ".tsx":
		return lexers.Get("typescript")
	case ".py":
		return lexers.Get("python")
	case ".rs":
		return lexers.Get("rust")
	case ".c", ".h":
		return lexers.Get("c")
	case ".cpp", ".cc", ".hpp":
		return lexers.Get("cpp")
	case ".sh", ".bash", ".zsh":
		return lexers.Get("bash")
	case ".json":
		return lexers.Get("json")
	case ".yaml", ".yml":
		return lexers.Get("yaml")
	case ".toml":
		return lexers.Get("toml")
	case ".html", ".htm":
		return lexers.Get("html")
	case ".css":
		return lexers.Get("css")
	case ".sql":
		return lexers.Get("sql")
	case ".md", ".markdown":
		return lexers.Get("markdown")
	}
	return lexers.Match(filePath)
}

func (h *highlighter) styleToken(token chroma.Token) string {
	entry := h.style.Get(token.Type)
	if entry == (chroma.StyleEntry{}) {
		return token.Value
	}

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		if color := entry.Colour.String(); strings.HasPrefix(color, "#") {
			style = style.Foreground(lipgloss.Color(color))
		}
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style.Render(token.Value)
}
