package output

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

var jsonLexer = lexers.Get("json")

// colourize styles the tokens of a JSON document. Tokens the styles do not
// cover, such as whitespace, are copied unchanged.
func colourize(text string, s jsonStyles) (string, error) {
	it, err := jsonLexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("error tokenising json output: %w", err)
	}

	var b strings.Builder
	for tok := it(); tok != chroma.EOF; tok = it() {
		b.WriteString(s.styleFor(tok).Render(tok.Value))
	}
	return b.String(), nil
}

func (s jsonStyles) styleFor(tok chroma.Token) renderer {
	switch {
	case tok.Type == chroma.NameTag:
		return s.key
	case tok.Type.InSubCategory(chroma.LiteralString):
		return s.str
	case tok.Type.InSubCategory(chroma.LiteralNumber):
		return s.number
	case tok.Type == chroma.KeywordConstant && tok.Value == "null":
		return s.null
	case tok.Type.InCategory(chroma.Keyword):
		return s.literal
	case tok.Type == chroma.Punctuation:
		return s.punct
	default:
		return plain{}
	}
}

// renderer is the part of lipgloss.Style used by colourize.
type renderer interface {
	Render(strs ...string) string
}

type plain struct{}

func (plain) Render(strs ...string) string { return strings.Join(strs, "") }
