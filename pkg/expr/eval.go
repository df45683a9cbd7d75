package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/trinity-ai/trinity/pkg/models"
)

// value is the runtime value lattice: missing < null < bool/number/string.
type value struct {
	missing bool
	null    bool
	b       *bool
	n       *float64
	s       *string
}

var (
	missingVal = value{missing: true}
	nullVal    = value{null: true}
)

func boolVal(b bool) value   { return value{b: &b} }
func numVal(n float64) value { return value{n: &n} }
func strVal(s string) value  { return value{s: &s} }

// fromAny converts a context lookup result into a value.
func fromAny(v any) value {
	switch t := v.(type) {
	case nil:
		return nullVal
	case bool:
		return boolVal(t)
	case float64:
		return numVal(t)
	case float32:
		return numVal(float64(t))
	case int:
		return numVal(float64(t))
	case int64:
		return numVal(float64(t))
	case string:
		return strVal(t)
	default:
		return strVal(fmt.Sprintf("%v", t))
	}
}

// render returns the substitution form of a value. Missing renders empty.
func (v value) render() string {
	switch {
	case v.missing, v.null:
		return ""
	case v.b != nil:
		return strconv.FormatBool(*v.b)
	case v.n != nil:
		return strconv.FormatFloat(*v.n, 'f', -1, 64)
	case v.s != nil:
		return *v.s
	}
	return ""
}

// truthy is the boolean coercion used for bare references in predicates.
func (v value) truthy() bool {
	switch {
	case v.missing, v.null:
		return false
	case v.b != nil:
		return *v.b
	case v.n != nil:
		return *v.n != 0
	case v.s != nil:
		return *v.s != ""
	}
	return false
}

// Render substitutes every {{...}} reference in template with its rendered
// value. Missing paths render as "" unless a `| default:"..."` pipe is given.
// Returns ExpressionError only on malformed syntax.
func Render(template string, ctx *Context) (string, error) {
	var sb strings.Builder
	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		sb.WriteString(rest[:open])
		rest = rest[open+2:]
		close := strings.Index(rest, "}}")
		if close < 0 {
			return "", models.NewError(models.KindExpressionError, "unterminated {{ in template")
		}
		inner := strings.TrimSpace(rest[:close])
		rest = rest[close+2:]

		path, fallback, hasDefault, err := splitDefaultPipe(inner)
		if err != nil {
			return "", err
		}
		v := resolveRef(path, ctx)
		if v.missing && hasDefault {
			sb.WriteString(fallback)
			continue
		}
		sb.WriteString(v.render())
	}
}

// splitDefaultPipe parses `path | default:"fallback"` references.
func splitDefaultPipe(inner string) (path, fallback string, has bool, err error) {
	pipe := strings.Index(inner, "|")
	if pipe < 0 {
		return inner, "", false, nil
	}
	path = strings.TrimSpace(inner[:pipe])
	spec := strings.TrimSpace(inner[pipe+1:])
	const prefix = "default:"
	if !strings.HasPrefix(spec, prefix) {
		return "", "", false, models.NewError(models.KindExpressionError, "unknown pipe %q", spec)
	}
	lit := strings.TrimSpace(spec[len(prefix):])
	if len(lit) < 2 || (lit[0] != '"' && lit[0] != '\'') || lit[len(lit)-1] != lit[0] {
		return "", "", false, models.NewError(models.KindExpressionError, "default value must be a quoted string")
	}
	return path, lit[1 : len(lit)-1], true, nil
}

// resolveRef looks up a dotted path, allowing a bare literal passthrough for
// robustness in mappings.
func resolveRef(path string, ctx *Context) value {
	if path == "" {
		return missingVal
	}
	if v, ok := ctx.lookup(path); ok {
		return fromAny(v)
	}
	return missingVal
}

// EvalPredicate evaluates a boolean expression such as
//
//	{{steps.review.output.decision}} == 'approved' && {{input.urgent}}
//
// over the context. Comparison with a missing operand is false, except
// `== null` which tests for missing/null. Returns ExpressionError only when
// the expression fails to parse.
func EvalPredicate(src string, ctx *Context) (bool, error) {
	p := &parser{lex: newLexer(src), ctx: ctx}
	p.next()
	v, err := p.parseOr()
	if err != nil {
		return false, err
	}
	if p.tok.kind != tokEOF {
		return false, models.NewError(models.KindExpressionError, "unexpected %q in expression", p.tok.text)
	}
	return v.truthy(), nil
}

// --- lexer ---

type tokKind int

const (
	tokEOF tokKind = iota
	tokRef         // {{path}}
	tokString
	tokNumber
	tokIdent // true, false, null
	tokOp    // == != < <= > >= && || ! ( )
)

type token struct {
	kind tokKind
	text string
}

type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer { return &lexer{src: src} }

func (l *lexer) lex() (token, error) {
	for l.pos < len(l.src) && unicode.IsSpace(rune(l.src[l.pos])) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF}, nil
	}
	c := l.src[l.pos]

	// {{path}} reference
	if strings.HasPrefix(l.src[l.pos:], "{{") {
		end := strings.Index(l.src[l.pos:], "}}")
		if end < 0 {
			return token{}, models.NewError(models.KindExpressionError, "unterminated {{ reference")
		}
		ref := strings.TrimSpace(l.src[l.pos+2 : l.pos+end])
		l.pos += end + 2
		return token{kind: tokRef, text: ref}, nil
	}

	// string literal
	if c == '\'' || c == '"' {
		quote := c
		end := l.pos + 1
		for end < len(l.src) && l.src[end] != quote {
			end++
		}
		if end >= len(l.src) {
			return token{}, models.NewError(models.KindExpressionError, "unterminated string literal")
		}
		text := l.src[l.pos+1 : end]
		l.pos = end + 1
		return token{kind: tokString, text: text}, nil
	}

	// number literal
	if c >= '0' && c <= '9' || (c == '-' && l.pos+1 < len(l.src) && l.src[l.pos+1] >= '0' && l.src[l.pos+1] <= '9') {
		end := l.pos + 1
		for end < len(l.src) && (l.src[end] >= '0' && l.src[end] <= '9' || l.src[end] == '.') {
			end++
		}
		text := l.src[l.pos:end]
		l.pos = end
		return token{kind: tokNumber, text: text}, nil
	}

	// operators
	for _, op := range []string{"==", "!=", "<=", ">=", "&&", "||", "<", ">", "!", "(", ")"} {
		if strings.HasPrefix(l.src[l.pos:], op) {
			l.pos += len(op)
			return token{kind: tokOp, text: op}, nil
		}
	}

	// bare identifiers (true/false/null)
	if unicode.IsLetter(rune(c)) {
		end := l.pos + 1
		for end < len(l.src) && (unicode.IsLetter(rune(l.src[end])) || unicode.IsDigit(rune(l.src[end])) || l.src[end] == '_' || l.src[end] == '.') {
			end++
		}
		text := l.src[l.pos:end]
		l.pos = end
		return token{kind: tokIdent, text: text}, nil
	}

	return token{}, models.NewError(models.KindExpressionError, "unexpected character %q", string(c))
}

// --- parser / evaluator ---

type parser struct {
	lex *lexer
	ctx *Context
	tok token
	err error
}

func (p *parser) next() {
	if p.err != nil {
		return
	}
	p.tok, p.err = p.lex.lex()
}

func (p *parser) parseOr() (value, error) {
	left, err := p.parseAnd()
	if err != nil {
		return missingVal, err
	}
	for p.tok.kind == tokOp && p.tok.text == "||" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return missingVal, err
		}
		left = boolVal(left.truthy() || right.truthy())
	}
	return left, p.err
}

func (p *parser) parseAnd() (value, error) {
	left, err := p.parseComparison()
	if err != nil {
		return missingVal, err
	}
	for p.tok.kind == tokOp && p.tok.text == "&&" {
		p.next()
		right, err := p.parseComparison()
		if err != nil {
			return missingVal, err
		}
		left = boolVal(left.truthy() && right.truthy())
	}
	return left, p.err
}

func (p *parser) parseComparison() (value, error) {
	left, err := p.parseUnary()
	if err != nil {
		return missingVal, err
	}
	if p.tok.kind == tokOp {
		switch op := p.tok.text; op {
		case "==", "!=", "<", "<=", ">", ">=":
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return missingVal, err
			}
			return boolVal(compare(op, left, right)), p.err
		}
	}
	return left, p.err
}

func (p *parser) parseUnary() (value, error) {
	if p.tok.kind == tokOp && p.tok.text == "!" {
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return missingVal, err
		}
		return boolVal(!v.truthy()), p.err
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (value, error) {
	if p.err != nil {
		return missingVal, p.err
	}
	switch p.tok.kind {
	case tokOp:
		if p.tok.text == "(" {
			p.next()
			v, err := p.parseOr()
			if err != nil {
				return missingVal, err
			}
			if p.tok.kind != tokOp || p.tok.text != ")" {
				return missingVal, models.NewError(models.KindExpressionError, "expected closing parenthesis")
			}
			p.next()
			return v, p.err
		}
	case tokRef:
		v := resolveRef(p.tok.text, p.ctx)
		p.next()
		return v, p.err
	case tokString:
		v := strVal(p.tok.text)
		p.next()
		return v, p.err
	case tokNumber:
		n, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return missingVal, models.NewError(models.KindExpressionError, "invalid number %q", p.tok.text)
		}
		p.next()
		return numVal(n), p.err
	case tokIdent:
		text := p.tok.text
		p.next()
		switch text {
		case "true":
			return boolVal(true), p.err
		case "false":
			return boolVal(false), p.err
		case "null":
			return nullVal, p.err
		}
		// Bare dotted identifiers resolve as context paths, matching the
		// shorthand some route conditions use (`steps.a.status == 'completed'`).
		return resolveRef(text, p.ctx), p.err
	case tokEOF:
		return missingVal, models.NewError(models.KindExpressionError, "unexpected end of expression")
	}
	return missingVal, models.NewError(models.KindExpressionError, "unexpected token %q", p.tok.text)
}

// compare applies a comparison operator. Missing operands make every
// comparison false, except `x == null` which is true when x is missing or
// null (and `x != null` its negation over present values).
func compare(op string, left, right value) bool {
	if left.null || right.null {
		other := left
		if left.null {
			other = right
		}
		isNullish := other.missing || other.null
		switch op {
		case "==":
			return isNullish
		case "!=":
			return !isNullish && !(left.null && right.null)
		default:
			return false
		}
	}
	if left.missing || right.missing {
		return false
	}

	// Numeric comparison when both sides are (or parse as) numbers.
	if ln, lok := left.asNumber(); lok {
		if rn, rok := right.asNumber(); rok {
			switch op {
			case "==":
				return ln == rn
			case "!=":
				return ln != rn
			case "<":
				return ln < rn
			case "<=":
				return ln <= rn
			case ">":
				return ln > rn
			case ">=":
				return ln >= rn
			}
		}
	}

	ls, rs := left.render(), right.render()
	switch op {
	case "==":
		return ls == rs
	case "!=":
		return ls != rs
	case "<":
		return ls < rs
	case "<=":
		return ls <= rs
	case ">":
		return ls > rs
	case ">=":
		return ls >= rs
	}
	return false
}

// asNumber returns the numeric interpretation of a value if it has one.
func (v value) asNumber() (float64, bool) {
	if v.n != nil {
		return *v.n, true
	}
	if v.s != nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(*v.s), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
