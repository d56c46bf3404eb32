package script

import "strings"

// Statement is a single command with its arguments
type Statement struct {
	Command string
	Args    []Token
	Line
}

func (s Statement) String() string {
	var b strings.Builder
	b.WriteString(s.Command)
	for _, a := range s.Args {
		b.WriteString(" ")
		if a.typ == tString {
			b.WriteString("\"" + a.image + "\"")
		} else {
			b.WriteString(a.image)
		}
	}
	return b.String()
}

// Parse splits the script into statements
func Parse(src string) ([]Statement, error) {
	return parseAt(src, 1)
}

func parseAt(src string, line Line) ([]Statement, error) {
	tokenizer := NewTokenizer(src, line)
	defer tokenizer.Close()

	var list []Statement
	for {
		st, err := parseStatement(tokenizer)
		if err != nil {
			return nil, err
		}
		if st != nil {
			list = append(list, *st)
		}
		if tokenizer.Peek().typ == tEof {
			return list, nil
		}
	}
}

// parseStatement reads tokens up to the next separator. It returns
// nil if the statement is empty.
func parseStatement(tokenizer *Tokenizer) (*Statement, error) {
	t := tokenizer.Next()
	for t.typ == tSeparator {
		t = tokenizer.Next()
	}
	switch t.typ {
	case tEof:
		return nil, nil
	case tIdent:
	default:
		return nil, unexpected("command", t)
	}

	st := &Statement{Command: t.image, Line: t.line}
	for {
		a := tokenizer.Next()
		switch a.typ {
		case tSeparator, tEof:
			return st, nil
		case tInvalid:
			return nil, a.line.Errorf("invalid token %s", a.image)
		default:
			st.Args = append(st.Args, a)
		}
	}
}

func unexpected(expected string, found Token) error {
	return found.line.Errorf("unexpected token, expected %s, found %v", expected, found)
}
