/*
Package lexer tokenizes wolfy theme source text.

The lexer is a hand-written scanner over the source string. It skips
whitespace and both comment forms ('//' to end of line, '/ * … * /'
blocks), resolves hex color literals to style.Color values while
scanning, and reports every token together with its byte span for
diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/wolfyui/wolfy/theme/style"
)

// tracer traces with key 'wolfy.theme'.
func tracer() tracing.Trace {
	return tracing.Select("wolfy.theme")
}

// Kind enumerates the token types of the theme language.
type Kind uint8

const (
	EOF Kind = iota

	// Structural punctuation
	BraceOpen    // {
	BraceClose   // }
	Colon        // :
	Semicolon    // ;
	Comma        // ,
	ParenOpen    // (
	ParenClose   // )
	Star         // *
	Dot          // .
	BracketOpen  // [
	BracketClose // ]

	// Keywords
	Rgb
	Rgba
	Url
	True
	False
	Inherit
	Horizontal
	Vertical

	// Units
	UnitPx
	UnitEm
	UnitPercent
	UnitMm

	HexColor // hex literal, resolved to a color during scanning
	Int
	Float
	String
	Ident
)

var kindNames = map[Kind]string{
	EOF: "EOF", BraceOpen: "'{'", BraceClose: "'}'", Colon: "':'",
	Semicolon: "';'", Comma: "','", ParenOpen: "'('", ParenClose: "')'",
	Star: "'*'", Dot: "'.'", BracketOpen: "'['", BracketClose: "']'",
	Rgb: "rgb", Rgba: "rgba", Url: "url", True: "true", False: "false",
	Inherit: "inherit", Horizontal: "horizontal", Vertical: "vertical",
	UnitPx: "px", UnitEm: "em", UnitPercent: "'%'", UnitMm: "mm",
	HexColor: "hex color", Int: "integer", Float: "float",
	String: "string", Ident: "identifier",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// keywords are recognized preferentially over the generic identifier
// rule, but only on an exact match.
var keywords = map[string]Kind{
	"rgb": Rgb, "rgba": Rgba, "url": Url,
	"true": True, "false": False, "inherit": Inherit,
	"horizontal": Horizontal, "vertical": Vertical,
	"px": UnitPx, "em": UnitEm, "mm": UnitMm,
}

// Token is a tagged value produced by the lexer. Depending on the kind,
// one of the payload fields is set: Text for identifiers and strings,
// Num for numeric literals, Color for hex color literals.
type Token struct {
	Kind  Kind
	Text  string
	Num   float64
	Color style.Color
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, String:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	case Int, Float:
		return fmt.Sprintf("%s %g", t.Kind, t.Num)
	case HexColor:
		return fmt.Sprintf("%s %s", t.Kind, t.Color)
	}
	return t.Kind.String()
}

// Span is a token together with its byte range in the source.
type Span struct {
	Start int
	End   int
	Tok   Token
}

// LexError reports an unrecognized run of input. The lexer continues
// scanning after the offending slice; the caller decides whether the
// error is fatal.
type LexError struct {
	Start int
	End   int
	Slice string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected token '%s' at position %d", e.Slice, e.Start)
}

// Lexer is a one-pass scanner over theme source text. It is restartable
// only by creating a new Lexer for the same source.
type Lexer struct {
	src string
	pos int
}

// New creates a lexer for the given source text.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Source returns the text the lexer scans.
func (l *Lexer) Source() string {
	return l.src
}

// Next returns the next token span. At end of input the token kind is
// EOF. Unrecognized input yields a *LexError and scanning continues
// past the offending slice, so a caller may keep pulling tokens.
func (l *Lexer) Next() (Span, error) {
	l.skipTrivia()
	start := l.pos
	if l.pos >= len(l.src) {
		return Span{Start: start, End: start, Tok: Token{Kind: EOF}}, nil
	}

	c := l.src[l.pos]
	switch c {
	case '{':
		return l.punct(BraceOpen)
	case '}':
		return l.punct(BraceClose)
	case ':':
		return l.punct(Colon)
	case ';':
		return l.punct(Semicolon)
	case ',':
		return l.punct(Comma)
	case '(':
		return l.punct(ParenOpen)
	case ')':
		return l.punct(ParenClose)
	case '*':
		return l.punct(Star)
	case '.':
		return l.punct(Dot)
	case '[':
		return l.punct(BracketOpen)
	case ']':
		return l.punct(BracketClose)
	case '%':
		return l.punct(UnitPercent)
	case '#':
		return l.scanHexColor()
	case '"':
		return l.scanString()
	}
	if isDigit(c) || (c == '-' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])) {
		return l.scanNumber()
	}
	if isIdentStart(c) {
		return l.scanIdent()
	}
	return l.illegal(start)
}

// All drains the lexer into a token slice, stopping at EOF or at the
// first lex error.
func (l *Lexer) All() ([]Span, error) {
	var spans []Span
	for {
		sp, err := l.Next()
		if err != nil {
			return spans, err
		}
		spans = append(spans, sp)
		if sp.Tok.Kind == EOF {
			return spans, nil
		}
	}
}

func (l *Lexer) punct(k Kind) (Span, error) {
	start := l.pos
	l.pos++
	return Span{Start: start, End: l.pos, Tok: Token{Kind: k}}, nil
}

// skipTrivia consumes whitespace and both comment forms. Comments never
// surface as tokens.
func (l *Lexer) skipTrivia() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.pos++
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			if nl := strings.IndexByte(l.src[l.pos:], '\n'); nl >= 0 {
				l.pos += nl + 1
			} else {
				l.pos = len(l.src)
			}
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				// unterminated block comment swallows the rest;
				// the next Next() call reports EOF
				tracer().Infof("theme source ends inside a block comment")
				l.pos = len(l.src)
				return
			}
			l.pos += end + 4
		default:
			return
		}
	}
}

func (l *Lexer) scanHexColor() (Span, error) {
	start := l.pos
	l.pos++ // consume '#'
	for l.pos < len(l.src) && isHexDigit(l.src[l.pos]) {
		l.pos++
	}
	slice := l.src[start:l.pos]
	color, err := style.FromHex(slice)
	if err != nil {
		return Span{}, &LexError{Start: start, End: l.pos, Slice: slice}
	}
	return Span{Start: start, End: l.pos, Tok: Token{Kind: HexColor, Color: color}}, nil
}

// scanNumber scans an integer or float literal. A float requires an
// explicit decimal point with digits on both sides; otherwise the
// integer interpretation wins, so "50%" is Int(50) followed by '%'.
func (l *Lexer) scanNumber() (Span, error) {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	kind := Int
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		kind = Float
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	slice := l.src[start:l.pos]
	num, err := strconv.ParseFloat(slice, 64)
	if err != nil {
		return Span{}, &LexError{Start: start, End: l.pos, Slice: slice}
	}
	return Span{Start: start, End: l.pos, Tok: Token{Kind: kind, Num: num}}, nil
}

// scanString scans a double-quoted string. Content between the quotes
// is taken verbatim; there is no escape processing.
func (l *Lexer) scanString() (Span, error) {
	start := l.pos
	l.pos++ // consume opening quote
	end := strings.IndexByte(l.src[l.pos:], '"')
	if end < 0 {
		l.pos = len(l.src)
		return Span{}, &LexError{Start: start, End: l.pos, Slice: l.src[start:]}
	}
	text := l.src[l.pos : l.pos+end]
	l.pos += end + 1
	return Span{Start: start, End: l.pos, Tok: Token{Kind: String, Text: text}}, nil
}

func (l *Lexer) scanIdent() (Span, error) {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	if kw, ok := keywords[text]; ok {
		return Span{Start: start, End: l.pos, Tok: Token{Kind: kw, Text: text}}, nil
	}
	return Span{Start: start, End: l.pos, Tok: Token{Kind: Ident, Text: text}}, nil
}

// illegal collects a maximal run of bytes that cannot start any token
// and reports it as one error.
func (l *Lexer) illegal(start int) (Span, error) {
	for l.pos < len(l.src) && !canStartToken(l.src[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		l.pos++ // always make progress
	}
	return Span{}, &LexError{Start: start, End: l.pos, Slice: l.src[start:l.pos]}
}

func canStartToken(c byte) bool {
	switch c {
	case '{', '}', ':', ';', ',', '(', ')', '*', '.', '[', ']', '%', '#', '"', '-',
		' ', '\t', '\r', '\n', '/':
		return true
	}
	return isDigit(c) || isIdentStart(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}
