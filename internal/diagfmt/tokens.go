package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"mofkit/internal/source"
	"mofkit/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

func leading(tok token.Token) []string {
	var out []string
	for _, tr := range tok.Leading {
		out = append(out, tr.Kind.String())
	}
	return out
}

// FormatTokensPretty prints one token per line with its position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		line := fmt.Sprintf("%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		line += fmt.Sprintf(" at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if l := leading(tok); len(l) > 0 {
			line += " (leading: " + strings.Join(l, ", ") + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: leading(tok),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return encode(w, out)
}
