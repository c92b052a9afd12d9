package collector

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_css "github.com/tree-sitter/tree-sitter-css/bindings/go"

	"github.com/huespec/huespec/pkg/color"
	"github.com/huespec/huespec/pkg/util"
)

// StylesheetParser extracts colour and font-family declarations from CSS
// using the tree-sitter CSS grammar.
//
// Thread Safety:
//   - A channel-based parser pool allows concurrent extraction
//   - Parsers are created lazily up to the pool size
//   - Must be closed via Close() to free parser resources
type StylesheetParser struct {
	pool    chan *ts.Parser
	maxSize int
	created int
	closed  bool
	mu      sync.Mutex
	logger  *slog.Logger
}

// NewStylesheetParser creates a parser with a CPU-aware pool size.
func NewStylesheetParser(logger *slog.Logger) *StylesheetParser {
	if logger == nil {
		logger = slog.Default()
	}
	size := util.GetOptimalPoolSize()
	return &StylesheetParser{
		pool:    make(chan *ts.Parser, size),
		maxSize: size,
		logger:  logger,
	}
}

// Close releases every pooled parser. Safe to call more than once; the
// parser cannot be used after.
func (sp *StylesheetParser) Close() {
	sp.mu.Lock()
	if sp.closed {
		sp.mu.Unlock()
		return
	}
	sp.closed = true
	sp.mu.Unlock()

	close(sp.pool)
	for p := range sp.pool {
		p.Close()
	}
}

func (sp *StylesheetParser) acquire() (*ts.Parser, error) {
	sp.mu.Lock()
	if sp.closed {
		sp.mu.Unlock()
		return nil, fmt.Errorf("stylesheet parser is closed")
	}
	sp.mu.Unlock()

	select {
	case p := <-sp.pool:
		if p == nil {
			return nil, fmt.Errorf("stylesheet parser is closed")
		}
		return p, nil
	default:
	}

	sp.mu.Lock()
	if sp.created < sp.maxSize {
		parser := ts.NewParser()
		if parser == nil {
			sp.mu.Unlock()
			return nil, fmt.Errorf("failed to create css parser")
		}
		if err := parser.SetLanguage(ts.NewLanguage(ts_css.Language())); err != nil {
			parser.Close()
			sp.mu.Unlock()
			return nil, fmt.Errorf("failed to set css language: %w", err)
		}
		sp.created++
		sp.mu.Unlock()
		return parser, nil
	}
	sp.mu.Unlock()

	// A receive on the closed pool yields nil instead of blocking.
	p := <-sp.pool
	if p == nil {
		return nil, fmt.Errorf("stylesheet parser is closed")
	}
	return p, nil
}

func (sp *StylesheetParser) release(p *ts.Parser) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.closed {
		p.Close()
		return
	}
	select {
	case sp.pool <- p:
	default:
		p.Close()
	}
}

// colorProperties are the declaration properties mined for colour values.
var colorProperties = map[string]bool{
	"color":            true,
	"background":       true,
	"background-color": true,
	"border":           true,
	"border-color":     true,
	"border-top":       true,
	"border-right":     true,
	"border-bottom":    true,
	"border-left":      true,
	"outline-color":    true,
	"caret-color":      true,
	"fill":             true,
	"stroke":           true,
	"box-shadow":       true,
	"text-shadow":      true,
}

// backgroundProperties mark the page-background flag when declared on a
// body-level selector.
var backgroundProperties = map[string]bool{
	"background":       true,
	"background-color": true,
}

var colorFunctions = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true,
}

// ExtractStylesheet parses CSS source and feeds every colour and
// font-family declaration into acc. Declarations under body, html or
// :root selectors carry the computed-style weight; everything else gets
// baseWeight. A partial parse tree still yields whatever declarations
// it contains.
func (sp *StylesheetParser) ExtractStylesheet(source []byte, baseWeight int, acc *accumulator) error {
	parser, err := sp.acquire()
	if err != nil {
		return err
	}
	tree := parser.Parse(source, nil)
	sp.release(parser)
	if tree == nil {
		return fmt.Errorf("css parser returned nil tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		sp.logger.Debug("stylesheet parse tree contains errors, extracting what remains")
	}

	sp.walk(root, source, baseWeight, false, acc)
	return nil
}

// walk descends the tree. Entering a rule_set rebinds the weight and
// body flag for its block; at-rules and nested rules keep descending.
func (sp *StylesheetParser) walk(node *ts.Node, source []byte, weight int, bodyLevel bool, acc *accumulator) {
	if node == nil {
		return
	}

	if node.Kind() == "rule_set" {
		w, body := weight, bodyLevel
		if sel := node.ChildByFieldName("selectors"); sel != nil {
			body = isBodySelector(sel.Utf8Text(source))
		} else if c := node.Child(0); c != nil && c.Kind() == "selectors" {
			body = isBodySelector(c.Utf8Text(source))
		}
		if body {
			w = WeightComputed
		}
		for i := uint(0); i < uint(node.ChildCount()); i++ {
			sp.walk(node.Child(i), source, w, body, acc)
		}
		return
	}

	if node.Kind() == "declaration" {
		sp.extractDeclaration(node, source, weight, bodyLevel, acc)
		return
	}

	for i := uint(0); i < uint(node.ChildCount()); i++ {
		sp.walk(node.Child(i), source, weight, bodyLevel, acc)
	}
}

func (sp *StylesheetParser) extractDeclaration(node *ts.Node, source []byte, weight int, bodyLevel bool, acc *accumulator) {
	var property string
	if c := node.Child(0); c != nil && c.Kind() == "property_name" {
		property = strings.ToLower(c.Utf8Text(source))
	}
	if property == "" {
		return
	}

	if property == "font-family" || property == "font" {
		if raw := declarationValue(node, source); raw != "" {
			if property == "font" {
				raw = familyFromShorthand(raw)
			}
			if raw != "" {
				acc.addFont(raw, weight)
			}
		}
		return
	}

	// Custom properties frequently hold brand colours; mine them for
	// colour tokens along with the regular colour properties.
	if !colorProperties[property] && !strings.HasPrefix(property, "--") {
		return
	}

	background := bodyLevel && backgroundProperties[property]
	for i := uint(1); i < uint(node.ChildCount()); i++ {
		sp.extractColorValue(node.Child(i), source, weight, background, acc)
	}
}

// extractColorValue pulls colour tokens out of a declaration value node.
// Hex literals arrive as color_value nodes, functional notation as
// call_expression, and named colours as plain_value; the last is only
// kept when it parses, since plain values also carry keywords like
// "solid" or "none".
func (sp *StylesheetParser) extractColorValue(node *ts.Node, source []byte, weight int, background bool, acc *accumulator) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "color_value":
		acc.addColor(node.Utf8Text(source), weight, background)
		return
	case "call_expression":
		if fn := node.Child(0); fn != nil && colorFunctions[strings.ToLower(fn.Utf8Text(source))] {
			acc.addColor(node.Utf8Text(source), weight, background)
			return
		}
	case "plain_value":
		raw := node.Utf8Text(source)
		if _, err := color.Parse(raw); err == nil {
			acc.addColor(raw, weight, background)
		}
		return
	}

	for i := uint(0); i < uint(node.ChildCount()); i++ {
		sp.extractColorValue(node.Child(i), source, weight, background, acc)
	}
}

// declarationValue returns the raw declaration text after the first
// colon, with the trailing semicolon and !important stripped.
func declarationValue(node *ts.Node, source []byte) string {
	text := node.Utf8Text(source)
	idx := strings.Index(text, ":")
	if idx < 0 {
		return ""
	}
	value := strings.TrimSuffix(strings.TrimSpace(text[idx+1:]), ";")
	value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
	return value
}

// isBodySelector reports whether any selector in the comma list is the
// page root: body, html or :root.
func isBodySelector(selectors string) bool {
	for _, sel := range strings.Split(selectors, ",") {
		switch strings.ToLower(strings.TrimSpace(sel)) {
		case "body", "html", ":root":
			return true
		}
	}
	return false
}

// familyFromShorthand pulls the family list out of a font shorthand.
// The family is everything after the size (the first token containing a
// slash or ending in a length unit); a shorthand without one yields "".
func familyFromShorthand(value string) string {
	fields := strings.Fields(value)
	for i, f := range fields {
		lower := strings.ToLower(f)
		if strings.Contains(lower, "/") || strings.HasSuffix(lower, "px") ||
			strings.HasSuffix(lower, "rem") || strings.HasSuffix(lower, "em") ||
			strings.HasSuffix(lower, "%") || strings.HasSuffix(lower, "pt") {
			return strings.Join(fields[i+1:], " ")
		}
	}
	return ""
}
