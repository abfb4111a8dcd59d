package token

import (
	"strings"
	"unicode"
)

const (
	ParenOpen  = '('
	ParenClose = ')'
	Comma      = ','
)

func Tokenize(src string) []Token {
	return TokenizeTo(nil, src)
}

// TokenizeTo appends the tokens of src to dst.
func TokenizeTo(dst []Token, src string) []Token {
	doc := newPosDoc(src)
	var (
		name      strings.Builder
		nameStart = -1
	)
	flush := func() {
		if nameStart < 0 {
			return
		}
		raw := name.String()
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			lead := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
			dst = append(dst, Token{
				Type: TName,
				Name: trimmed,
				Pos:  doc.Pos(nameStart + lead),
			})
		}
		name.Reset()
		nameStart = -1
	}
	for i, r := range src {
		switch r {
		case ParenOpen:
			flush()
			dst = append(dst, Token{Type: TOpen, Pos: doc.Pos(i)})
		case ParenClose:
			flush()
			dst = append(dst, Token{Type: TClose, Pos: doc.Pos(i)})
		case Comma:
			flush()
			dst = append(dst, Token{Type: TSep, Pos: doc.Pos(i)})
		default:
			if nameStart < 0 {
				nameStart = i
			}
			name.WriteRune(r)
		}
	}
	flush()
	return dst
}
