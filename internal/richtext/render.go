package richtext

import (
	"fmt"
	"html"
	"strings"
)

// Block is one node of a portable text document.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`

	// URL is set on youtube embeds.
	URL string `json:"url,omitempty"`
}

// Span is a run of text sharing the same marks.
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced from [Span.Marks] by key.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

const (
	blockType   = "block"
	spanType    = "span"
	youtubeType = "youtube"
	linkType    = "link"
)

var styleTags = map[string]string{
	"normal":     "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"h5":         "h5",
	"h6":         "h6",
	"blockquote": "blockquote",
}

var listTags = map[string]string{
	"bullet": "ul",
	"number": "ol",
}

var decorators = map[string][2]string{
	"strong":         {"<strong>", "</strong>"},
	"em":             {"<em>", "</em>"},
	"code":           {"<code>", "</code>"},
	"underline":      {`<span style="text-decoration:underline;">`, "</span>"},
	"strike-through": {"<del>", "</del>"},
}

// Render converts every block on its own and concatenates the HTML in
// order. A list item is therefore always wrapped in its own list element.
func Render(blocks []Block) (string, error) {
	var b strings.Builder
	for i, block := range blocks {
		out, err := renderBlock(block)
		if err != nil {
			return "", fmt.Errorf("block %d: %w", i, err)
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

func renderBlock(block Block) (string, error) {
	switch block.Type {
	case blockType, "":
		if block.ListItem != "" {
			return renderListItem(block)
		}

		style := block.Style
		if style == "" {
			style = "normal"
		}
		tag, ok := styleTags[style]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
		}

		inner, err := renderSpans(block)
		if err != nil {
			return "", err
		}
		return "<" + tag + ">" + inner + "</" + tag + ">", nil

	case youtubeType:
		// the url is embedded as given, query strings included
		return `<div><ReactPlayer url="` + block.URL + `" /></div>`, nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBlock, block.Type)
	}
}

func renderListItem(block Block) (string, error) {
	tag, ok := listTags[block.ListItem]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownList, block.ListItem)
	}

	inner, err := renderSpans(block)
	if err != nil {
		return "", err
	}
	return "<" + tag + "><li>" + inner + "</li></" + tag + ">", nil
}

func renderSpans(block Block) (string, error) {
	defs := make(map[string]MarkDef, len(block.MarkDefs))
	for _, d := range block.MarkDefs {
		defs[d.Key] = d
	}

	var b strings.Builder
	for _, span := range block.Children {
		if span.Type != "" && span.Type != spanType {
			return "", fmt.Errorf("%w: child %q", ErrUnknownBlock, span.Type)
		}

		text := strings.ReplaceAll(html.EscapeString(span.Text), "\n", "<br/>")

		opening := make([]string, 0, len(span.Marks))
		closing := make([]string, 0, len(span.Marks))
		for _, mark := range span.Marks {
			open, closeTag, err := markTags(mark, defs)
			if err != nil {
				return "", err
			}
			opening = append(opening, open)
			closing = append(closing, closeTag)
		}

		for _, o := range opening {
			b.WriteString(o)
		}
		b.WriteString(text)
		for i := len(closing) - 1; i >= 0; i-- {
			b.WriteString(closing[i])
		}
	}
	return b.String(), nil
}

func markTags(mark string, defs map[string]MarkDef) (string, string, error) {
	if tags, ok := decorators[mark]; ok {
		return tags[0], tags[1], nil
	}

	def, ok := defs[mark]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
	switch def.Type {
	case linkType:
		return `<a href="` + html.EscapeString(def.Href) + `">`, "</a>", nil
	default:
		return "", "", fmt.Errorf("%w: annotation %q", ErrUnknownMark, def.Type)
	}
}
