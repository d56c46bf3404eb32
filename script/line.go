package script

import (
	"fmt"
	"strconv"
)

// Line is a line number in the script
type Line int

func (l Line) GetLine() Line {
	return l
}

type errorWithLine struct {
	message string
	line    Line
	cause   error
}

func (e errorWithLine) Error() string {
	m := e.message
	if e.line > 0 {
		m += " in line " + strconv.Itoa(int(e.line))
	}
	if e.cause != nil {
		m += "; cause: " + e.cause.Error()
	}
	return m
}

func (e errorWithLine) Unwrap() error {
	return e.cause
}

func (l Line) Errorf(m string, a ...any) error {
	return errorWithLine{
		message: fmt.Sprintf(m, a...),
		line:    l,
	}
}

func (l Line) EnhanceErrorf(cause error, m string, a ...any) error {
	return errorWithLine{
		message: fmt.Sprintf(m, a...),
		line:    l,
		cause:   cause,
	}
}
