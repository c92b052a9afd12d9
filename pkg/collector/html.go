package collector

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// extractHTML walks a parsed HTML document, feeding inline style
// attributes and <style> blocks into acc and returning the external
// stylesheet URLs from <link rel="stylesheet"> tags, resolved against
// pageURL when it is non-empty.
func (c *Collector) extractHTML(doc []byte, pageURL string, acc *accumulator) ([]string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	var base *url.URL
	if pageURL != "" {
		base, err = url.Parse(pageURL)
		if err != nil {
			return nil, fmt.Errorf("parsing page url: %w", err)
		}
	}

	var hrefs []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "style":
				if text := textContent(n); text != "" {
					if err := c.css.ExtractStylesheet([]byte(text), WeightRule, acc); err != nil {
						c.logger.Warn("skipping unparsable style block", "error", err)
					}
				}
			case "link":
				if href := stylesheetHref(n); href != "" {
					hrefs = append(hrefs, resolveHref(base, href))
				}
			default:
				if style := attr(n, "style"); style != "" {
					c.extractInlineStyle(n.Data, style, acc)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(root)

	return hrefs, nil
}

// extractInlineStyle parses a style attribute by wrapping it in a
// synthetic rule so the stylesheet grammar accepts it. Inline styles on
// body or html count as computed page style; anything else gets the
// inline weight, and a body background declaration sets the flag.
func (c *Collector) extractInlineStyle(element, style string, acc *accumulator) {
	weight := WeightInline
	selector := "x"
	if element == "body" || element == "html" {
		weight = WeightComputed
		selector = element
	}
	wrapped := fmt.Sprintf("%s { %s }", selector, style)
	if err := c.css.ExtractStylesheet([]byte(wrapped), weight, acc); err != nil {
		c.logger.Debug("skipping unparsable inline style", "element", element, "error", err)
	}
}

// stylesheetHref returns the href of a stylesheet link, or "".
func stylesheetHref(n *html.Node) string {
	rel := strings.ToLower(attr(n, "rel"))
	if !strings.Contains(rel, "stylesheet") {
		return ""
	}
	return attr(n, "href")
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return b.String()
}

// resolveHref resolves href against the page URL; with no base the href
// passes through untouched (local extraction resolves paths itself).
func resolveHref(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
