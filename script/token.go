package script

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	tIdent TokenType = iota
	tNumber
	tString
	tSeparator
	tEof
	tInvalid
)

const (
	EOF rune = 0
)

var TokenEof = Token{tEof, "EOF", -1}

type Token struct {
	typ   TokenType
	image string
	line  Line
}

func (t Token) String() string {
	if t.line > 0 {
		return fmt.Sprintf("'%v' [%v]", t.image, t.line)
	} else {
		return fmt.Sprintf("'%v'", t.image)
	}
}

// isNil is true if the token is the absent value
func (t Token) isNil() bool {
	return t.typ == tIdent && t.image == "nil"
}

// Tokenizer splits a script into tokens. The tokens are produced
// by a separate goroutine which is stopped by Close.
type Tokenizer struct {
	str     string
	isLast  bool
	last    rune
	tok     chan Token
	done    chan struct{}
	closed  bool
	isToken bool
	token   Token
	line    Line
}

// NewTokenizer creates a tokenizer. The first line of the text
// is reported as the given line number.
func NewTokenizer(text string, line Line) *Tokenizer {
	t := make(chan Token)
	tok := &Tokenizer{
		str:  text,
		line: line,
		tok:  t,
		done: make(chan struct{}),
	}
	go tok.run(t)
	return tok
}

func (t *Tokenizer) Peek() Token {
	if t.isToken {
		return t.token
	}

	var ok bool
	t.token, ok = <-t.tok
	if ok {
		t.isToken = true
		return t.token
	} else {
		return TokenEof
	}
}

func (t *Tokenizer) Next() Token {
	tok := t.Peek()
	t.isToken = false
	return tok
}

// Close stops the producing goroutine if not all tokens have been read
func (t *Tokenizer) Close() {
	if !t.closed {
		t.closed = true
		close(t.done)
	}
}

func (t *Tokenizer) emit(tokens chan<- Token, tok Token) bool {
	select {
	case tokens <- tok:
		return true
	case <-t.done:
		return false
	}
}

func (t *Tokenizer) run(tokens chan<- Token) {
	defer close(tokens)
	for {
		var tok Token
		switch c := t.next(); c {
		case ' ', '\r', '\t':
			continue
		case EOF:
			return
		case '\n':
			tok = Token{tSeparator, "\\n", t.line}
			t.line++
		case ';':
			tok = Token{tSeparator, ";", t.line}
		case '#':
			t.read(func(c rune) bool { return c != '\n' })
			continue
		case '"':
			image := t.read(func(c rune) bool { return c != '"' && c != '\n' })
			if t.next() != '"' {
				t.unread()
				tok = Token{tInvalid, "unterminated string", t.line}
			} else {
				tok = Token{tString, image, t.line}
			}
		default:
			switch {
			case isNumberStart(c):
				t.unread()
				tok = Token{tNumber, t.read(isNumber), t.line}
			case isIdent(c):
				t.unread()
				tok = Token{tIdent, t.read(isIdent), t.line}
			default:
				tok = Token{tInvalid, string(c), t.line}
			}
		}
		if !t.emit(tokens, tok) {
			return
		}
	}
}

func isNumberStart(c rune) bool {
	return unicode.IsDigit(c) || c == '-'
}

func isNumber(c rune) bool {
	return unicode.IsDigit(c) || c == '.' || c == '-'
}

func isIdent(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.' || c == '-'
}

func (t *Tokenizer) peek() rune {
	if t.isLast {
		return t.last
	}
	if len(t.str) == 0 {
		t.last = EOF
		return EOF
	}
	var size int
	t.last, size = utf8.DecodeRuneInString(t.str)
	t.isLast = true
	t.str = t.str[size:]
	return t.last
}

func (t *Tokenizer) consume() {
	if !t.isLast {
		t.peek()
	}
	t.isLast = false
}

func (t *Tokenizer) unread() {
	t.isLast = true
}

func (t *Tokenizer) next() rune {
	n := t.peek()
	t.consume()
	return n
}

func (t *Tokenizer) read(valid func(c rune) bool) string {
	str := strings.Builder{}
	for {
		if c := t.next(); c != EOF && valid(c) {
			str.WriteRune(c)
		} else {
			t.unread()
			return str.String()
		}
	}
}
