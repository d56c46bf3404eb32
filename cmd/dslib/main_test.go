package main

import (
	"bytes"
	"github.com/hneemann/dslib/script"
	"github.com/stretchr/testify/assert"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSession(t *testing.T) {
	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	defer log.SetOutput(os.Stderr)

	var out bytes.Buffer
	in := script.New(&out)
	src := "queue q 10 20\nfoo\ndequeue q\n"
	assert.NoError(t, session(in, strings.NewReader(src), &out, "> "))
	assert.Equal(t, "> > > 10\n> ", out.String())
	assert.Contains(t, logBuf.String(), "unknown command foo in line 2")
}

func TestParseFlags(t *testing.T) {
	t.Setenv("DSLIB_PROMPT", "$ ")
	t.Setenv("DSLIB_VERBOSE", "true")

	var out bytes.Buffer
	c, err := parseFlags([]string{"-q", "script.txt"}, &out)
	assert.NoError(t, err)
	assert.True(t, c.quiet)
	assert.True(t, c.verbose)
	assert.Equal(t, "$ ", c.prompt)
	assert.Equal(t, "script.txt", c.file)

	_, err = parseFlags([]string{"a", "b"}, &out)
	assert.Error(t, err)
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.dsl")
	assert.NoError(t, os.WriteFile(file, []byte("map m k v\nget m k\n"), 0o644))

	var out bytes.Buffer
	assert.NoError(t, runFile(script.New(&out), file))
	assert.Equal(t, "v\n", out.String())

	assert.Error(t, runFile(script.New(&out), filepath.Join(dir, "missing")))
}
