package token

import "fmt"

type TokenType int

const (
	TOpen TokenType = iota
	TClose
	TSep
	TName
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TOpen:  "TOpen",
		TClose: "TClose",
		TSep:   "TSep",
		TName:  "TName",
	}[t]
}

type Token struct {
	Type TokenType
	Pos  *Pos
	// Name holds the trimmed text of a TName token.
	Name string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos)
}

func (t *Token) String() string {
	switch t.Type {
	case TOpen:
		return string(ParenOpen)
	case TClose:
		return string(ParenClose)
	case TSep:
		return string(Comma)
	default:
		return t.Name
	}
}
