/*
Package cssadapter imports themes written in standard CSS syntax.

The native theme dialect is close to CSS but not CSS: hex colors are
resolved while lexing, arrays and url(path, scalemode) are first-class
values, and selectors are flat element[.state] names. Some users bring
existing CSS files anyway, so this adapter parses them with douceur and
converts the result into the native AST: rule preludes become wolfy
selectors, declaration values are re-parsed by the theme parser into
typed values.

The conversion is fail-soft at the value level: a declaration value the
theme grammar cannot type is kept as a bare identifier or string, so it
still resolves through GetString and friends instead of vanishing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssadapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	cssparser "github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/wolfyui/wolfy/theme"
	"github.com/wolfyui/wolfy/theme/ast"
	"github.com/wolfyui/wolfy/theme/parser"
)

// tracer traces with key 'wolfy.theme'.
func tracer() tracing.Trace {
	return tracing.Select("wolfy.theme")
}

// Parse converts standard CSS source text into a resolved theme tree.
func Parse(src string) (*theme.Tree, error) {
	sheet, err := Convert(src)
	if err != nil {
		return nil, err
	}
	return theme.FromStylesheet(sheet), nil
}

// Convert parses standard CSS source text into the native AST without
// resolving it. At-rules and selectors that do not fit the flat
// element[.state] model are skipped with a trace message rather than
// rejected, so a stylesheet shared with a web page remains usable.
func Convert(src string) (*ast.Stylesheet, error) {
	parsed, err := cssparser.Parse(src)
	if err != nil {
		return nil, err
	}
	sheet := &ast.Stylesheet{}
	for _, rule := range parsed.Rules {
		if rule.Kind != css.QualifiedRule {
			tracer().Infof("css import: skipping at-rule %s", rule.Name)
			continue
		}
		converted, ok := convertRule(rule)
		if ok {
			sheet.Rules = append(sheet.Rules, converted)
		}
	}
	return sheet, nil
}

func convertRule(rule *css.Rule) (ast.Rule, bool) {
	var out ast.Rule
	for _, prelude := range strings.Split(rule.Prelude, ",") {
		sel, ok := convertSelector(strings.TrimSpace(prelude))
		if !ok {
			tracer().Infof("css import: skipping selector %q", prelude)
			continue
		}
		out.Selectors = append(out.Selectors, sel)
	}
	if len(out.Selectors) == 0 {
		return out, false
	}
	for _, decl := range rule.Declarations {
		out.Properties = append(out.Properties, ast.Property{
			Name:  decl.Property,
			Value: convertValue(decl.Value),
		})
	}
	return out, true
}

// convertSelector accepts '*', 'name' and 'name.state'. Anything with
// combinators, attribute parts or pseudo-classes has no meaning in the
// flat widget model.
func convertSelector(prelude string) (ast.Selector, bool) {
	if prelude == "*" {
		return ast.UniversalSelector(), true
	}
	name, state, hasState := strings.Cut(prelude, ".")
	if !isFlatName(name) || (hasState && !isFlatName(state)) {
		return ast.Selector{}, false
	}
	if hasState {
		return ast.ElementWithState(name, state), true
	}
	return ast.Element(name), true
}

func isFlatName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := c == '_' || c == '-' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9')
		if !ok {
			return false
		}
	}
	return s[0] < '0' || s[0] > '9'
}

// convertValue types a declaration value through the theme grammar,
// degrading to a string or identifier when the grammar rejects it.
func convertValue(raw string) ast.Value {
	raw = strings.TrimSpace(raw)
	if v, err := parser.ParseValue(raw); err == nil {
		return v
	}
	tracer().Debugf("css import: keeping value %q untyped", raw)
	if strings.ContainsAny(raw, " \t(") {
		return ast.StringValue(raw)
	}
	return ast.IdentValue(raw)
}
