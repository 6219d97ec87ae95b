// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/wdamron/rook"
	"github.com/wdamron/rook/types"
)

const (
	promptMain = "rook> "
	promptCont = "....> "
)

func repl(maxNesting int) error {
	in := rook.NewInterpreter(rook.WithMaxNesting(maxNesting))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return completeWord(in.Names(), line, pos)
	})

	for {
		code, ok := readInput(ln, in)
		if !ok {
			fmt.Println()
			return nil
		}
		switch strings.TrimSpace(code) {
		case "":
			continue
		case ":quit":
			return nil
		case ":names":
			fmt.Println(strings.Join(in.Names(), " "))
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		report(in.Interpret(code))
	}
}

// readInput reads lines until they form a complete input.
func readInput(ln *liner.State, in *rook.Interpreter) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		code := b.String()
		if strings.TrimSpace(code) == "" || !in.Incomplete(code) {
			return code, true
		}
	}
}

func report(ev *rook.Evaluation) {
	if ev.HasErrors() {
		for _, err := range ev.Errors {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}
	switch {
	case ev.Class != nil:
		fmt.Printf("class %s\n", ev.Class.Name)
	case ev.Function != nil:
		fmt.Printf("%s : %s\n", ev.Function.Name, types.TypeString(ev.Function.DeclaredType()))
	default:
		fmt.Println(types.TypeString(ev.Type))
	}
}

// completeWord completes the identifier ending at pos.
func completeWord(names []string, line string, pos int) (head string, completions []string, tail string) {
	start := pos
	for start > 0 && isIdentChar(line[start-1]) {
		start--
	}
	head, word, tail := line[:start], line[start:pos], line[pos:]
	if word == "" {
		return head, nil, tail
	}
	for _, name := range names {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}
	return head, completions, tail
}

func isIdentChar(b byte) bool {
	return b == '_' || '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
