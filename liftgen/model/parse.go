package model

import (
	"fmt"
	"strconv"

	"github.com/typelift/typelift/liftgen/csem"
)

// ParseType parses a compact C-like type expression against the module's
// declarations. The grammar is deliberately postfix: a specifier (qualifiers
// and a core type in any order), followed by any number of "*", "[N]", and
// "(params)" suffixes applied left to right.
func (m *Module) ParseType(expr string) (csem.QualType, error) {
	toks, err := scan(expr)
	if err != nil {
		return csem.QualType{}, err
	}
	p := &parser{mod: m, expr: expr, toks: toks}
	qt, err := p.parseType()
	if err != nil {
		return csem.QualType{}, err
	}
	if p.pos != len(p.toks) {
		return csem.QualType{}, p.errorf("trailing input at %q", p.toks[p.pos].text)
	}
	return qt, nil
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokNumber
	tokPunct
)

type token struct {
	kind tokenKind
	text string
}

func scan(expr string) ([]token, error) {
	var toks []token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '*' || c == '[' || c == ']' || c == '(' || c == ')' || c == ',':
			toks = append(toks, token{tokPunct, string(c)})
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(expr) && expr[j] >= '0' && expr[j] <= '9' {
				j++
			}
			toks = append(toks, token{tokNumber, expr[i:j]})
			i = j
		case isIdentByte(c):
			j := i
			for j < len(expr) && (isIdentByte(expr[j]) || expr[j] >= '0' && expr[j] <= '9') {
				j++
			}
			toks = append(toks, token{tokIdent, expr[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("invalid character %q in type expression %q", c, expr)
		}
	}
	return toks, nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

type parser struct {
	mod  *Module
	expr string
	toks []token
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("type expression %q: %s", p.expr, fmt.Sprintf(format, args...))
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) accept(kind tokenKind, text string) bool {
	if t, ok := p.peek(); ok && t.kind == kind && t.text == text {
		p.pos++
		return true
	}
	return false
}

func (p *parser) parseType() (csem.QualType, error) {
	qt, err := p.parseSpec()
	if err != nil {
		return csem.QualType{}, err
	}
	return p.parseSuffixes(qt)
}

func (p *parser) parseSuffixes(qt csem.QualType) (csem.QualType, error) {
	for {
		switch {
		case p.accept(tokPunct, "*"):
			ptr := csem.QualType{Type: &csem.Pointer{Pointee: qt}}
			// Qualifiers after the star belong to the pointer itself.
			for {
				if p.accept(tokIdent, "const") {
					ptr.Quals.Const = true
				} else if p.accept(tokIdent, "volatile") {
					ptr.Quals.Volatile = true
				} else {
					break
				}
			}
			qt = ptr

		case p.accept(tokPunct, "["):
			tok, ok := p.peek()
			if !ok || tok.kind != tokNumber {
				return csem.QualType{}, p.errorf("expected constant array bound")
			}
			p.pos++
			n, err := strconv.ParseUint(tok.text, 10, 64)
			if err != nil {
				return csem.QualType{}, p.errorf("invalid array bound %q", tok.text)
			}
			if !p.accept(tokPunct, "]") {
				return csem.QualType{}, p.errorf("expected ']'")
			}
			qt = csem.QualType{Type: &csem.ConstantArray{Elem: qt, Len: n}}

		case p.accept(tokPunct, "("):
			fn, err := p.parseParams(qt)
			if err != nil {
				return csem.QualType{}, err
			}
			qt = csem.QualType{Type: fn}

		default:
			return qt, nil
		}
	}
}

// parseParams parses a parameter list suffix. "()" is an unprototyped
// function; "(void)" is a prototype with no parameters.
func (p *parser) parseParams(ret csem.QualType) (*csem.Function, error) {
	if p.accept(tokPunct, ")") {
		return &csem.Function{Return: ret}, nil
	}

	var params []csem.QualType
	for {
		param, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.accept(tokPunct, ",") {
			continue
		}
		if p.accept(tokPunct, ")") {
			break
		}
		return nil, p.errorf("expected ',' or ')' in parameter list")
	}

	if len(params) == 1 {
		if b, ok := params[0].Type.(*csem.Builtin); ok && b.IsVoid() && params[0].Quals == (csem.Quals{}) {
			return &csem.Function{Return: ret, Proto: true}, nil
		}
	}
	return &csem.Function{Params: params, Return: ret, Proto: true}, nil
}

// parseSpec parses qualifiers and the core type. Qualifier keywords may
// appear before, between, or after the core type words, as in C.
func (p *parser) parseSpec() (csem.QualType, error) {
	var quals csem.Quals
	var words []string
	var core csem.Type

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokIdent {
			break
		}

		switch tok.text {
		case "const":
			quals.Const = true
			p.pos++
			continue
		case "volatile":
			quals.Volatile = true
			p.pos++
			continue
		case "struct", "enum":
			if core != nil || len(words) > 0 {
				return csem.QualType{}, p.errorf("unexpected %q", tok.text)
			}
			p.pos++
			name, ok := p.peek()
			if !ok || name.kind != tokIdent {
				return csem.QualType{}, p.errorf("expected tag name after %q", tok.text)
			}
			p.pos++
			tag, err := p.lookupTag(tok.text, name.text)
			if err != nil {
				return csem.QualType{}, err
			}
			core = tag
			continue
		}

		if isSpecWord(tok.text) {
			if core != nil {
				return csem.QualType{}, p.errorf("unexpected %q", tok.text)
			}
			words = append(words, tok.text)
			p.pos++
			continue
		}

		// A plain identifier resolves to a typedef or a tag; it can only
		// begin a specifier.
		if core == nil && len(words) == 0 {
			p.pos++
			named, err := p.lookupName(tok.text)
			if err != nil {
				return csem.QualType{}, err
			}
			core = named
			continue
		}
		break
	}

	if core == nil {
		if len(words) == 0 {
			return csem.QualType{}, p.errorf("expected type specifier")
		}
		kind, err := classifyBuiltin(words)
		if err != nil {
			return csem.QualType{}, p.errorf("%s", err)
		}
		core = &csem.Builtin{Kind: kind}
	} else if len(words) > 0 {
		return csem.QualType{}, p.errorf("invalid type specifier combination")
	}

	return csem.QualType{Type: core, Quals: quals}, nil
}

func (p *parser) lookupTag(keyword, name string) (csem.Type, error) {
	switch keyword {
	case "struct":
		decl, ok := p.mod.Record(name)
		if !ok {
			return nil, p.errorf("unknown record: %s", name)
		}
		return &csem.Elaborated{Named: csem.Unqual(&csem.Record{Decl: decl})}, nil
	default:
		decl, ok := p.mod.Enum(name)
		if !ok {
			return nil, p.errorf("unknown enum: %s", name)
		}
		return &csem.Elaborated{Named: csem.Unqual(&csem.Enum{Decl: decl})}, nil
	}
}

// lookupName resolves a bare identifier: typedefs shadow tags, and a bare tag
// name behaves as if written with its keyword.
func (p *parser) lookupName(name string) (csem.Type, error) {
	if underlying, ok := p.mod.Typedef(name); ok {
		return &csem.Typedef{Name: name, Underlying: underlying}, nil
	}
	if decl, ok := p.mod.Record(name); ok {
		return &csem.Elaborated{Named: csem.Unqual(&csem.Record{Decl: decl})}, nil
	}
	if decl, ok := p.mod.Enum(name); ok {
		return &csem.Elaborated{Named: csem.Unqual(&csem.Enum{Decl: decl})}, nil
	}
	return nil, p.errorf("unknown type name: %s", name)
}

var specWords = map[string]bool{
	"void": true, "bool": true, "_Bool": true,
	"char": true, "short": true, "int": true, "long": true,
	"signed": true, "unsigned": true,
	"float": true, "double": true,
	"__int128": true,
	"half": true, "__fp16": true, "_Float16": true, "__bf16": true,
	"_Float128": true, "__float128": true,
	"_Complex": true,
}

func isSpecWord(w string) bool { return specWords[w] }

// classifyBuiltin resolves an accumulated specifier word list to a builtin
// kind, following C's specifier-counting rules for the supported subset.
func classifyBuiltin(words []string) (csem.BuiltinKind, error) {
	var nVoid, nBool, nChar, nShort, nInt, nLong, nFloat, nDouble int
	var nSigned, nUnsigned, nInt128, nHalf, nF16, nBF16, nF128, nComplex int

	for _, w := range words {
		switch w {
		case "void":
			nVoid++
		case "bool", "_Bool":
			nBool++
		case "char":
			nChar++
		case "short":
			nShort++
		case "int":
			nInt++
		case "long":
			nLong++
		case "signed":
			nSigned++
		case "unsigned":
			nUnsigned++
		case "float":
			nFloat++
		case "double":
			nDouble++
		case "__int128":
			nInt128++
		case "half", "__fp16":
			nHalf++
		case "_Float16":
			nF16++
		case "__bf16":
			nBF16++
		case "_Float128", "__float128":
			nF128++
		case "_Complex":
			nComplex++
		}
	}

	if nSigned > 0 && nUnsigned > 0 {
		return 0, fmt.Errorf("both signed and unsigned in specifier")
	}
	unsigned := nUnsigned > 0

	// Floating and integer words never mix ("long double" is the one valid
	// pair), and void stands alone.
	nFloatWords := nHalf + nF16 + nBF16 + nF128 + nFloat + nDouble
	nIntWords := nBool + nChar + nShort + nInt + nLong + nInt128
	longDouble := nLong == 1 && nDouble == 1 && len(words) == 2
	if nComplex == 0 && !longDouble {
		if nFloatWords > 0 && (nIntWords > 0 || nSigned+nUnsigned > 0) {
			return 0, fmt.Errorf("invalid type specifier combination: %v", words)
		}
		if nVoid > 0 && len(words) != 1 {
			return 0, fmt.Errorf("invalid type specifier combination: %v", words)
		}
	}

	switch {
	case nComplex > 0:
		return csem.Complex, nil
	case nVoid == 1 && len(words) == 1:
		return csem.Void, nil
	case nBool == 1 && len(words) == 1:
		return csem.Bool, nil
	case nHalf == 1 && len(words) == 1:
		return csem.Half, nil
	case nF16 == 1 && len(words) == 1:
		return csem.Float16, nil
	case nBF16 == 1 && len(words) == 1:
		return csem.BFloat16, nil
	case nF128 == 1 && len(words) == 1:
		return csem.Float128, nil
	case nFloat == 1 && len(words) == 1:
		return csem.Float, nil
	case nDouble == 1 && nLong == 0 && len(words) == 1:
		return csem.Double, nil
	case nDouble == 1 && nLong == 1 && len(words) == 2:
		return csem.LongDouble, nil
	case nInt128 == 1 && nBool+nChar+nShort+nInt+nLong == 0:
		if unsigned {
			return csem.UInt128, nil
		}
		return csem.Int128, nil
	case nChar == 1 && nBool+nShort+nInt+nLong+nInt128 == 0:
		switch {
		case unsigned:
			return csem.UChar, nil
		case nSigned > 0:
			return csem.SChar, nil
		default:
			return csem.CharS, nil
		}
	case nShort == 1 && nInt <= 1 && nBool+nChar+nLong+nInt128 == 0:
		if unsigned {
			return csem.UShort, nil
		}
		return csem.Short, nil
	case nLong == 2 && nInt <= 1 && nBool+nChar+nShort+nInt128 == 0:
		if unsigned {
			return csem.ULongLong, nil
		}
		return csem.LongLong, nil
	case nLong == 1 && nInt <= 1 && nBool+nChar+nShort+nInt128+nDouble == 0:
		if unsigned {
			return csem.ULong, nil
		}
		return csem.Long, nil
	case nInt == 1 && nBool+nChar+nShort+nLong+nInt128 == 0,
		nInt == 0 && (nSigned == 1 || nUnsigned == 1) && nBool+nChar+nShort+nLong+nInt128 == 0:
		if unsigned {
			return csem.UInt, nil
		}
		return csem.Int, nil
	}

	return 0, fmt.Errorf("invalid type specifier combination: %v", words)
}
