package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"

	"github.com/ukeSJTU/termoj/types"
)

// Statement prints a problem statement as terminal text. Statements
// arrive as markdown with embedded LaTeX math; the math markers are
// stripped and the markdown is flattened to plain blocks.
func (r *Renderer) Statement(p *types.Problem) {
	title := fmt.Sprintf("%d. %s", p.ID, p.Title)
	r.paintln(cyanBold(), "%s", title)
	r.Message("%s", dashes(utf8.RuneCountInString(title)))

	r.section("Description", p.Description)
	r.section("Input", p.Input)
	r.section("Output", p.Output)
	r.section("Data Range", p.DataRange)

	if len(p.Examples) > 0 {
		r.sectionHeader("Examples")
		for i, ex := range p.Examples {
			r.Message("")
			r.Message("example %d:", i+1)
			if ex.Input != "" {
				r.Message("input:")
				r.Message("%s", indent(strings.TrimRight(ex.Input, "\n"), "    "))
			}
			if ex.Output != "" {
				r.Message("output:")
				r.Message("%s", indent(strings.TrimRight(ex.Output, "\n"), "    "))
			}
			if ex.Description != "" {
				r.Message("%s", markdownText(stripLatex(ex.Description)))
			}
		}
	}

	if len(p.LanguagesAccepted) > 0 {
		r.Message("")
		r.Message("accepted languages: %s", strings.Join(p.LanguagesAccepted, ", "))
	}
}

func (r *Renderer) section(name, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	r.sectionHeader(name)
	r.Message("%s", markdownText(stripLatex(body)))
}

func (r *Renderer) sectionHeader(name string) {
	r.Message("")
	r.paintln(color.New(color.FgCyan), "%s", name)
	r.Message("%s", dashes(utf8.RuneCountInString(name)))
}

var (
	displayMath = regexp.MustCompile(`(?s)\$\$(.*?)\$\$`)
	inlineMath  = regexp.MustCompile(`\$([^$\n]+?)\$`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// stripLatex removes math delimiters but keeps the math text itself, so
// "$n \le 10^5$" reads as "n \le 10^5". Display math gets its own line.
func stripLatex(s string) string {
	s = displayMath.ReplaceAllString(s, "\n$1\n")
	s = inlineMath.ReplaceAllString(s, "$1")
	return s
}

// markdownText renders markdown to HTML and flattens the HTML to
// terminal text: paragraphs collapse to single lines, code blocks are
// indented, lists get bullets, headings get dash underlines. If the
// HTML will not parse the stripped source is returned as-is.
func markdownText(src string) string {
	var extensions blackfriday.Extensions
	extensions |= blackfriday.NoIntraEmphasis
	extensions |= blackfriday.Tables
	extensions |= blackfriday.FencedCode
	extensions |= blackfriday.Autolink
	extensions |= blackfriday.Strikethrough
	extensions |= blackfriday.SpaceHeadings

	rendered := blackfriday.Run([]byte(src), blackfriday.WithExtensions(extensions))
	doc, err := html.Parse(bytes.NewReader(rendered))
	if err != nil || doc == nil {
		return strings.TrimSpace(src)
	}

	var blocks []string
	emit := func(s string) {
		if s != "" {
			blocks = append(blocks, s)
		}
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				if text := collapse(inlineText(n)); text != "" {
					emit(text + "\n" + dashes(utf8.RuneCountInString(text)))
				}
				return
			case "p":
				emit(collapse(inlineText(n)))
				return
			case "pre":
				if code := strings.TrimRight(inlineText(n), "\n"); code != "" {
					emit(indent(code, "    "))
				}
				return
			case "ul", "ol":
				emit(listText(n))
				return
			case "blockquote":
				if text := collapse(inlineText(n)); text != "" {
					emit("> " + text)
				}
				return
			case "table":
				emit(tableText(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(blocks, "\n\n")
}

// inlineText gathers the raw text of a subtree; br becomes a newline.
func inlineText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		return "\n"
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(inlineText(c))
	}
	return b.String()
}

func listText(n *html.Node) string {
	var items []string
	idx := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			idx++
			text := collapse(inlineText(c))
			if text == "" {
				continue
			}
			if n.Data == "ol" {
				items = append(items, fmt.Sprintf("%d. %s", idx, text))
			} else {
				items = append(items, "- "+text)
			}
		}
	}
	return strings.Join(items, "\n")
}

func tableText(n *html.Node) string {
	var rows []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, collapse(inlineText(c)))
				}
			}
			rows = append(rows, strings.Join(cells, " | "))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(rows, "\n")
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func dashes(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "-"
	}
	return s
}
