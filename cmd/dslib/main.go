// Command dslib runs scripts which work with queues and hash maps.
//
//	dslib [-v] [-q] [-prompt str] [file]
//
// Without a file the statements are read from stdin line by line.
// Errors in an interactive session are reported and the session continues,
// errors in a file abort the execution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/hneemann/dslib/script"
	"github.com/xyproto/env/v2"
	"io"
	"log"
	"os"
	"strings"
)

type config struct {
	verbose bool
	quiet   bool
	prompt  string
	file    string
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("dslib", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.BoolVar(&c.verbose, "v", env.Bool("DSLIB_VERBOSE"), "log every executed statement")
	fs.BoolVar(&c.quiet, "q", env.Bool("DSLIB_QUIET"), "do not print the welcome banner")
	fs.StringVar(&c.prompt, "prompt", env.Str("DSLIB_PROMPT", "> "), "prompt shown in interactive sessions")
	fs.Usage = func() {
		fmt.Fprintln(out, "usage: dslib [flags] [file]")
		fs.PrintDefaults()
		fmt.Fprintln(out, "commands:", strings.Join(script.Commands(), ", "))
	}
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		c.file = fs.Arg(0)
	default:
		return c, fmt.Errorf("only one script file allowed, got %d", fs.NArg())
	}
	return c, nil
}

// session reads statements line by line. Errors are logged and do not
// stop the session.
func session(in *script.Interpreter, r io.Reader, out io.Writer, prompt string) error {
	sc := bufio.NewScanner(r)
	line := 0
	for {
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line++
		if err := in.RunAt(sc.Text(), line); err != nil {
			log.Print(err)
		}
	}
}

func runFile(in *script.Interpreter, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return in.Run(string(src))
}

func run(args []string, stdin *os.File, stdout io.Writer) int {
	c, err := parseFlags(args, stdout)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		log.Print(err)
		return 2
	}

	in := script.New(stdout)
	if c.verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		in.SetTrace(log.Default())
	}

	if c.file != "" {
		if err := runFile(in, c.file); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	}

	interactive := isTerminal(stdin.Fd())
	if !c.quiet && interactive {
		fmt.Fprintln(stdout, "Welcome to dslib")
	}
	prompt := ""
	if interactive {
		prompt = c.prompt
	}
	if err := session(in, stdin, stdout, prompt); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}
