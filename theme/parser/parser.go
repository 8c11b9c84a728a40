/*
Package parser turns the lexer's token stream into a theme AST.

The grammar is deterministic and is parsed by recursive descent with one
token of lookahead:

	stylesheet = rule*
	rule       = selector (',' selector)* '{' property* '}'
	selector   = '*' | IDENT ('.' IDENT)?
	property   = IDENT ':' value ';'
	value      = HEXCOLOR
	           | 'rgb' '(' num ',' num ',' num ')'
	           | 'rgba' '(' num ',' num ',' num ',' num ')'
	           | 'url' '(' STRING (',' IDENT)? ')'
	           | '[' (STRING (',' STRING)*)? ']'
	           | STRING
	           | 'true' | 'false' | 'inherit'
	           | 'horizontal' | 'vertical'
	           | IDENT
	           | dist dist? dist? dist?
	dist       = num ('px' | 'em' | '%' | 'mm')?

rgb/rgba channel values are 0–255. The alpha argument of rgba follows
the token kind: an integer is 0–255 (matching the hex-color alpha
byte), a float is 0.0–1.0. Either way the channel is clamped.

A sequence of two or four dists forms the padding shorthand; a single
unadorned number stays a plain Number in the AST and is only defaulted
to pixels by a caller asking for a Distance.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/wolfyui/wolfy/theme/ast"
	"github.com/wolfyui/wolfy/theme/lexer"
	"github.com/wolfyui/wolfy/theme/style"
)

// tracer traces with key 'wolfy.theme.parser'.
func tracer() tracing.Trace {
	return tracing.Select("wolfy.theme.parser")
}

// ParseError reports a token sequence that matches no grammar
// production, with the byte position of the offending token.
type ParseError struct {
	Pos int
	Msg string
	Err error // set when the failure originates in the lexer
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses complete theme source text into a stylesheet.
func Parse(src string) (*ast.Stylesheet, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	sheet := &ast.Stylesheet{}
	for p.peek().Kind != lexer.EOF {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	tracer().Debugf("parsed stylesheet with %d rules", len(sheet.Rules))
	return sheet, nil
}

// ParseValue parses a single property value, as it would appear between
// ':' and ';'. Used by the CSS import adapter to type foreign
// declaration values.
func ParseValue(src string) (ast.Value, error) {
	p, err := newParser(src)
	if err != nil {
		return ast.Value{}, err
	}
	v, err := p.parseValue()
	if err != nil {
		return ast.Value{}, err
	}
	if sp := p.peek(); sp.Kind != lexer.EOF {
		return ast.Value{}, p.errorf("expected end of value, have %s", sp)
	}
	return v, nil
}

type parser struct {
	spans []lexer.Span
	pos   int
}

// newParser drains the lexer up front. Theme files are kilobyte-scale,
// and a materialized token slice gives cheap lookahead. The first lexer
// error is fatal for parsing.
func newParser(src string) (*parser, error) {
	spans, err := lexer.New(src).All()
	if err != nil {
		if lexErr, ok := err.(*lexer.LexError); ok {
			return nil, &ParseError{Pos: lexErr.Start, Msg: lexErr.Error(), Err: lexErr}
		}
		return nil, err
	}
	return &parser{spans: spans}, nil
}

func (p *parser) peek() lexer.Token {
	return p.spans[p.pos].Tok
}

func (p *parser) next() lexer.Token {
	tok := p.spans[p.pos].Tok
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(k lexer.Kind) (lexer.Token, error) {
	if tok := p.peek(); tok.Kind != k {
		return lexer.Token{}, p.errorf("expected %s, have %s", k, tok)
	}
	return p.next(), nil
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: p.spans[p.pos].Start, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseRule() (ast.Rule, error) {
	var rule ast.Rule
	for {
		sel, err := p.parseSelector()
		if err != nil {
			return rule, err
		}
		rule.Selectors = append(rule.Selectors, sel)
		if p.peek().Kind != lexer.Comma {
			break
		}
		p.next()
	}
	if _, err := p.expect(lexer.BraceOpen); err != nil {
		return rule, err
	}
	for p.peek().Kind != lexer.BraceClose {
		if p.peek().Kind == lexer.EOF {
			return rule, p.errorf("unterminated rule, expected '}'")
		}
		prop, err := p.parseProperty()
		if err != nil {
			return rule, err
		}
		rule.Properties = append(rule.Properties, prop)
	}
	p.next() // consume '}'
	return rule, nil
}

func (p *parser) parseSelector() (ast.Selector, error) {
	switch tok := p.peek(); tok.Kind {
	case lexer.Star:
		p.next()
		return ast.UniversalSelector(), nil
	case lexer.Ident:
		p.next()
		if p.peek().Kind != lexer.Dot {
			return ast.Element(tok.Text), nil
		}
		p.next()
		state, err := p.expect(lexer.Ident)
		if err != nil {
			return ast.Selector{}, err
		}
		return ast.ElementWithState(tok.Text, state.Text), nil
	default:
		return ast.Selector{}, p.errorf("expected selector, have %s", tok)
	}
}

func (p *parser) parseProperty() (ast.Property, error) {
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return ast.Property{}, err
	}
	if _, err := p.expect(lexer.Colon); err != nil {
		return ast.Property{}, err
	}
	value, err := p.parseValue()
	if err != nil {
		return ast.Property{}, err
	}
	if _, err := p.expect(lexer.Semicolon); err != nil {
		return ast.Property{}, err
	}
	return ast.Property{Name: name.Text, Value: value}, nil
}

func (p *parser) parseValue() (ast.Value, error) {
	switch tok := p.peek(); tok.Kind {
	case lexer.HexColor:
		p.next()
		return ast.ColorValue(tok.Color), nil
	case lexer.Rgb:
		return p.parseRgb(false)
	case lexer.Rgba:
		return p.parseRgb(true)
	case lexer.Url:
		return p.parseUrl()
	case lexer.BracketOpen:
		return p.parseArray()
	case lexer.String:
		p.next()
		return ast.StringValue(tok.Text), nil
	case lexer.True:
		p.next()
		return ast.BoolValue(true), nil
	case lexer.False:
		p.next()
		return ast.BoolValue(false), nil
	case lexer.Inherit:
		p.next()
		return ast.IdentValue("inherit"), nil
	case lexer.Horizontal:
		p.next()
		return ast.OrientationValue(style.Horizontal), nil
	case lexer.Vertical:
		p.next()
		return ast.OrientationValue(style.Vertical), nil
	case lexer.Ident:
		p.next()
		return ast.IdentValue(tok.Text), nil
	case lexer.Int, lexer.Float:
		return p.parseNumeric()
	default:
		return ast.Value{}, p.errorf("expected value, have %s", tok)
	}
}

// parseNumeric parses one, two or four number-with-optional-unit items.
// One item without a unit stays a Number; with a unit it becomes a
// Distance; two or four items form the padding shorthands.
func (p *parser) parseNumeric() (ast.Value, error) {
	var dists []style.Distance
	firstHadUnit := false
	for p.peek().Kind == lexer.Int || p.peek().Kind == lexer.Float {
		num := p.next()
		unit := ""
		switch p.peek().Kind {
		case lexer.UnitPx, lexer.UnitEm, lexer.UnitMm:
			unit = p.next().Text
		case lexer.UnitPercent:
			p.next()
			unit = "%"
		}
		if len(dists) == 0 {
			firstHadUnit = unit != ""
		}
		dists = append(dists, ast.MakeDistance(num.Num, unit))
		if len(dists) > 4 {
			return ast.Value{}, p.errorf("too many values in distance sequence")
		}
	}
	switch len(dists) {
	case 1:
		if !firstHadUnit {
			return ast.NumberValue(dists[0].Value), nil
		}
		return ast.DistanceValue(dists[0]), nil
	case 2:
		return ast.Padding2Value(dists[0], dists[1]), nil
	case 4:
		return ast.Padding4Value(dists[0], dists[1], dists[2], dists[3]), nil
	}
	return ast.Value{}, p.errorf("expected 1, 2 or 4 values in distance sequence, have %d", len(dists))
}

// parseRgb parses rgb(r, g, b) and rgba(r, g, b, a).
func (p *parser) parseRgb(withAlpha bool) (ast.Value, error) {
	p.next() // consume rgb/rgba keyword
	if _, err := p.expect(lexer.ParenOpen); err != nil {
		return ast.Value{}, err
	}
	var chans [4]float32
	chans[3] = 1
	n := 3
	if withAlpha {
		n = 4
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			if _, err := p.expect(lexer.Comma); err != nil {
				return ast.Value{}, err
			}
		}
		tok := p.peek()
		if tok.Kind != lexer.Int && tok.Kind != lexer.Float {
			return ast.Value{}, p.errorf("expected channel value, have %s", tok)
		}
		p.next()
		if i == 3 && tok.Kind == lexer.Float {
			chans[i] = float32(tok.Num) // alpha as 0.0–1.0
		} else {
			chans[i] = float32(tok.Num) / 255
		}
	}
	if _, err := p.expect(lexer.ParenClose); err != nil {
		return ast.Value{}, err
	}
	return ast.ColorValue(style.FromF32(chans[0], chans[1], chans[2], chans[3])), nil
}

// parseUrl parses url(path) and url(path, scalemode).
func (p *parser) parseUrl() (ast.Value, error) {
	p.next() // consume url keyword
	if _, err := p.expect(lexer.ParenOpen); err != nil {
		return ast.Value{}, err
	}
	path, err := p.expect(lexer.String)
	if err != nil {
		return ast.Value{}, err
	}
	img := style.ImageSource{Path: path.Text}
	if p.peek().Kind == lexer.Comma {
		p.next()
		mode, err := p.expect(lexer.Ident)
		if err != nil {
			return ast.Value{}, err
		}
		scale, ok := style.ParseImageScale(mode.Text)
		if !ok {
			return ast.Value{}, p.errorf("unknown image scale mode %q", mode.Text)
		}
		img.Scale = scale
	}
	if _, err := p.expect(lexer.ParenClose); err != nil {
		return ast.Value{}, err
	}
	return ast.ImageValue(img), nil
}

// parseArray parses [ "a", "b" ] string lists, including the empty
// list.
func (p *parser) parseArray() (ast.Value, error) {
	p.next() // consume '['
	items := []string{}
	for p.peek().Kind != lexer.BracketClose {
		if len(items) > 0 {
			if _, err := p.expect(lexer.Comma); err != nil {
				return ast.Value{}, err
			}
		}
		item, err := p.expect(lexer.String)
		if err != nil {
			return ast.Value{}, err
		}
		items = append(items, item.Text)
	}
	p.next() // consume ']'
	return ast.ArrayValue(items), nil
}
