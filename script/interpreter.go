package script

import (
	"fmt"
	"github.com/hneemann/dslib/chain"
	"github.com/hneemann/dslib/hashMap"
	"github.com/hneemann/dslib/listMap"
	"github.com/hneemann/iterator"
	"io"
	"log"
	"strconv"
	"strings"
)

type command struct {
	// minArgs and maxArgs limit the number of arguments, -1 means unlimited
	minArgs int
	maxArgs int
	run     func(in *Interpreter, st Statement) error
}

// Interpreter executes scripts. All queues and maps created by a script
// are kept by the interpreter, so later scripts can access them.
type Interpreter struct {
	out      io.Writer
	vars     listMap.ListMap[any]
	commands *hashMap.Map[command]
	trace    *log.Logger
}

// New creates an interpreter writing its results to out
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		out:      out,
		vars:     listMap.New[any](4),
		commands: commandTable(),
	}
}

// SetTrace enables logging of every executed statement
func (in *Interpreter) SetTrace(l *log.Logger) *Interpreter {
	in.trace = l
	return in
}

// Run executes the script and stops at the first error
func (in *Interpreter) Run(src string) error {
	return in.RunAt(src, 1)
}

// RunAt is the same as Run but numbers the first line of src with line
func (in *Interpreter) RunAt(src string, line int) error {
	list, err := parseAt(src, Line(line))
	if err != nil {
		return err
	}
	for _, st := range list {
		if err := in.Exec(st); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes a single statement
func (in *Interpreter) Exec(st Statement) error {
	if in.trace != nil {
		in.trace.Printf("line %d: %v", st.Line, st)
	}
	c, ok := in.commands.Get(st.Command)
	if !ok {
		return st.Errorf("unknown command %s", st.Command)
	}
	n := len(st.Args)
	if n < c.minArgs || (c.maxArgs >= 0 && n > c.maxArgs) {
		return st.Errorf("wrong number of arguments for %s: %d", st.Command, n)
	}
	return c.run(in, st)
}

func (in *Interpreter) println(a ...any) error {
	_, err := fmt.Fprintln(in.out, a...)
	return err
}

func (in *Interpreter) printOpt(v string, ok bool) error {
	if !ok {
		return in.println("nil")
	}
	return in.println(v)
}

func name(t Token) (string, error) {
	if t.typ != tIdent || t.isNil() {
		return "", t.line.Errorf("expected a name, found %v", t)
	}
	return t.image, nil
}

func key(t Token) hashMap.Key {
	if t.isNil() {
		return hashMap.None
	}
	return hashMap.Some(t.image)
}

func index(t Token) (int, error) {
	i, err := strconv.Atoi(t.image)
	if t.typ != tNumber || err != nil {
		return 0, t.line.Errorf("expected an index, found %v", t)
	}
	return i, nil
}

func values(args []Token) []string {
	v := make([]string, len(args))
	for i, a := range args {
		v[i] = a.image
	}
	return v
}

func (in *Interpreter) lookup(t Token) (any, error) {
	n, err := name(t)
	if err != nil {
		return nil, err
	}
	c, ok := in.vars.Get(n)
	if !ok {
		return nil, t.line.Errorf("%s is not defined", n)
	}
	return c, nil
}

func (in *Interpreter) queueVar(t Token) (*chain.Queue[string], error) {
	c, err := in.lookup(t)
	if err != nil {
		return nil, err
	}
	q, ok := c.(*chain.Queue[string])
	if !ok {
		return nil, t.line.Errorf("%s is not a queue", t.image)
	}
	return q, nil
}

func (in *Interpreter) mapVar(t Token) (*hashMap.Map[string], error) {
	c, err := in.lookup(t)
	if err != nil {
		return nil, err
	}
	m, ok := c.(*hashMap.Map[string])
	if !ok {
		return nil, t.line.Errorf("%s is not a map", t.image)
	}
	return m, nil
}

func (in *Interpreter) iterable(t Token) (chain.Iterator[string], error) {
	c, err := in.lookup(t)
	if err != nil {
		return nil, err
	}
	switch c := c.(type) {
	case *chain.Queue[string]:
		return c.Iterator(), nil
	case *hashMap.Map[string]:
		return c.Iterator(), nil
	}
	return nil, t.line.Errorf("%s can not be iterated", t.image)
}

// produce adapts an iterator to a producer
func produce(it chain.Iterator[string]) iterator.Producer[string] {
	return func(yield iterator.Consumer[string]) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// join formats the produced values as a list
func join(p iterator.Producer[string]) (string, error) {
	var b strings.Builder
	b.WriteString("[")
	_, err := iterator.MapReduce(p, 0, func(n int, s string) (int, error) {
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
		return n + 1, nil
	})
	b.WriteString("]")
	return b.String(), err
}

func (in *Interpreter) printList(p iterator.Producer[string]) error {
	s, err := join(p)
	if err != nil {
		return err
	}
	return in.println(s)
}
