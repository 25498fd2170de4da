// Package decode implements the encoder's decoder boundary: spec
// section 6 only specifies this package's public contract, not its
// internals, so it stays intentionally minimal -- a compact
// recursive-descent parser rather than the scanner-table machinery a
// production decoder would use.
//
// Grounded loosely on rhogenson-ccl's asspb/ccl lexer (the one repo in
// this corpus that tokenizes a JSON-like grammar), trimmed down to the
// strict JSON grammar this package targets.
package decode

import (
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jetvalue/jetvalue"
)

// KeyMode selects how object keys are represented in decoded Values.
type KeyMode uint8

// Key modes.
const (
	// KeysStrings decodes every key as a string key (the default).
	KeysStrings KeyMode = iota
	// KeysCopy is like KeysStrings but guarantees the key string does
	// not alias the input buffer.
	KeysCopy
	// KeysSymbols decodes every key as a symbol key.
	KeysSymbols
)

// DecodeOption configures a Decode call.
type DecodeOption func(*decodeOpts)

type decodeOpts struct {
	keys   KeyMode
	mapper func(string) jetvalue.Key
}

// WithKeys selects how object keys are decoded.
func WithKeys(m KeyMode) DecodeOption {
	return func(o *decodeOpts) { o.keys = m }
}

// WithKeyMapper installs a custom function from a raw decoded key string
// to a jetvalue.Key, overriding WithKeys.
func WithKeyMapper(f func(string) jetvalue.Key) DecodeOption {
	return func(o *decodeOpts) { o.mapper = f }
}

// Decode parses input as JSON and returns the resulting value tree.
func Decode(input []byte, opts ...DecodeOption) (jetvalue.Value, error) {
	o := decodeOpts{keys: KeysStrings}
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser{data: input, opts: o}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return jetvalue.Null(), err
	}
	p.skipSpace()
	if p.i != len(p.data) {
		return jetvalue.Null(), p.errorf("trailing data after JSON value")
	}
	return v, nil
}

// MustDecode is like Decode but panics on error.
func MustDecode(input []byte, opts ...DecodeOption) jetvalue.Value {
	v, err := Decode(input, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	data []byte
	i    int
	opts decodeOpts
}

type syntaxError struct {
	offset int
	msg    string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("json: syntax error at offset %d: %s", e.offset, e.msg)
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &syntaxError{offset: p.i, msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.i < len(p.data) {
		switch p.data[p.i] {
		case ' ', '\t', '\n', '\r':
			p.i++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (jetvalue.Value, error) {
	if p.i >= len(p.data) {
		return jetvalue.Null(), p.errorf("unexpected end of input")
	}
	switch c := p.data[p.i]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseStringLiteral()
		if err != nil {
			return jetvalue.Null(), err
		}
		return jetvalue.String(s), nil
	case c == 't':
		return p.parseLiteral("true", jetvalue.Bool(true))
	case c == 'f':
		return p.parseLiteral("false", jetvalue.Bool(false))
	case c == 'n':
		return p.parseLiteral("null", jetvalue.Null())
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return jetvalue.Null(), p.errorf("unexpected byte %q", c)
	}
}

func (p *parser) parseLiteral(lit string, v jetvalue.Value) (jetvalue.Value, error) {
	if p.i+len(lit) > len(p.data) || string(p.data[p.i:p.i+len(lit)]) != lit {
		return jetvalue.Null(), p.errorf("invalid literal, expected %q", lit)
	}
	p.i += len(lit)
	return v, nil
}

func (p *parser) parseObject() (jetvalue.Value, error) {
	p.i++ // consume '{'
	var pairs []jetvalue.Pair
	p.skipSpace()
	if p.i < len(p.data) && p.data[p.i] == '}' {
		p.i++
		return jetvalue.Object(pairs), nil
	}
	for {
		p.skipSpace()
		if p.i >= len(p.data) || p.data[p.i] != '"' {
			return jetvalue.Null(), p.errorf("expected object key")
		}
		keyText, err := p.parseStringLiteral()
		if err != nil {
			return jetvalue.Null(), err
		}
		p.skipSpace()
		if p.i >= len(p.data) || p.data[p.i] != ':' {
			return jetvalue.Null(), p.errorf("expected ':' after object key")
		}
		p.i++
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return jetvalue.Null(), err
		}
		pairs = append(pairs, jetvalue.Pair{Key: p.makeKey(keyText), Val: val})

		p.skipSpace()
		if p.i >= len(p.data) {
			return jetvalue.Null(), p.errorf("unterminated object")
		}
		switch p.data[p.i] {
		case ',':
			p.i++
			continue
		case '}':
			p.i++
			return jetvalue.Object(pairs), nil
		default:
			return jetvalue.Null(), p.errorf("expected ',' or '}'")
		}
	}
}

func (p *parser) makeKey(text string) jetvalue.Key {
	if p.opts.mapper != nil {
		return p.opts.mapper(text)
	}
	switch p.opts.keys {
	case KeysSymbols:
		return jetvalue.SymbolKey(text)
	case KeysCopy:
		return jetvalue.StringKey(string(append([]byte(nil), text...)))
	default:
		return jetvalue.StringKey(text)
	}
}

func (p *parser) parseArray() (jetvalue.Value, error) {
	p.i++ // consume '['
	var elems []jetvalue.Value
	p.skipSpace()
	if p.i < len(p.data) && p.data[p.i] == ']' {
		p.i++
		return jetvalue.Array(elems), nil
	}
	for {
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return jetvalue.Null(), err
		}
		elems = append(elems, v)

		p.skipSpace()
		if p.i >= len(p.data) {
			return jetvalue.Null(), p.errorf("unterminated array")
		}
		switch p.data[p.i] {
		case ',':
			p.i++
			continue
		case ']':
			p.i++
			return jetvalue.Array(elems), nil
		default:
			return jetvalue.Null(), p.errorf("expected ',' or ']'")
		}
	}
}

func (p *parser) parseNumber() (jetvalue.Value, error) {
	start := p.i
	isFloat := false
	if p.i < len(p.data) && p.data[p.i] == '-' {
		p.i++
	}
	for p.i < len(p.data) && p.data[p.i] >= '0' && p.data[p.i] <= '9' {
		p.i++
	}
	if p.i < len(p.data) && p.data[p.i] == '.' {
		isFloat = true
		p.i++
		for p.i < len(p.data) && p.data[p.i] >= '0' && p.data[p.i] <= '9' {
			p.i++
		}
	}
	if p.i < len(p.data) && (p.data[p.i] == 'e' || p.data[p.i] == 'E') {
		isFloat = true
		p.i++
		if p.i < len(p.data) && (p.data[p.i] == '+' || p.data[p.i] == '-') {
			p.i++
		}
		for p.i < len(p.data) && p.data[p.i] >= '0' && p.data[p.i] <= '9' {
			p.i++
		}
	}
	lit := string(p.data[start:p.i])
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return jetvalue.Null(), p.errorf("invalid number literal %q", lit)
		}
		return jetvalue.Float(f), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return jetvalue.Null(), p.errorf("invalid number literal %q", lit)
	}
	return jetvalue.Int(n), nil
}

func (p *parser) parseStringLiteral() (string, error) {
	p.i++ // consume opening quote
	start := p.i
	var buf []byte // allocated lazily, only if an escape is found

	for p.i < len(p.data) {
		c := p.data[p.i]
		switch {
		case c == '"':
			if buf == nil {
				s := string(p.data[start:p.i])
				p.i++
				return s, nil
			}
			buf = append(buf, p.data[start:p.i]...)
			p.i++
			return string(buf), nil
		case c == '\\':
			if buf == nil {
				buf = append(buf, p.data[start:p.i]...)
			} else {
				buf = append(buf, p.data[start:p.i]...)
			}
			p.i++
			if p.i >= len(p.data) {
				return "", p.errorf("unterminated escape sequence")
			}
			esc := p.data[p.i]
			switch esc {
			case '"', '\\', '/':
				buf = append(buf, esc)
				p.i++
			case 'b':
				buf = append(buf, '\b')
				p.i++
			case 'f':
				buf = append(buf, '\f')
				p.i++
			case 'n':
				buf = append(buf, '\n')
				p.i++
			case 'r':
				buf = append(buf, '\r')
				p.i++
			case 't':
				buf = append(buf, '\t')
				p.i++
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				var enc [4]byte
				n := utf8.EncodeRune(enc[:], r)
				buf = append(buf, enc[:n]...)
			default:
				return "", p.errorf("invalid escape sequence \\%c", esc)
			}
			start = p.i
		default:
			p.i++
		}
	}
	return "", p.errorf("unterminated string literal")
}

func (p *parser) parseUnicodeEscape() (rune, error) {
	p.i++ // consume 'u'
	r1, err := p.parseHex4()
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(rune(r1)) {
		if p.i+1 < len(p.data) && p.data[p.i] == '\\' && p.data[p.i+1] == 'u' {
			p.i++
			p.i++
			r2, err := p.parseHex4()
			if err != nil {
				return 0, err
			}
			dec := utf16.DecodeRune(rune(r1), rune(r2))
			if dec != utf8.RuneError {
				return dec, nil
			}
		}
		return utf8.RuneError, nil
	}
	return rune(r1), nil
}

func (p *parser) parseHex4() (uint16, error) {
	if p.i+4 > len(p.data) {
		return 0, p.errorf("truncated \\u escape")
	}
	v, err := strconv.ParseUint(string(p.data[p.i:p.i+4]), 16, 32)
	if err != nil {
		return 0, p.errorf("invalid \\u escape")
	}
	p.i += 4
	return uint16(v), nil
}
