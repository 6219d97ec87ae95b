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

// Command rook lexes, parses, and type-checks Rook sources.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/wdamron/rook"
	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/grammar"
	"github.com/wdamron/rook/internal/config"
	"github.com/wdamron/rook/lexer"
	"github.com/wdamron/rook/types"
)

var plog = capnslog.NewPackageLogger("github.com/wdamron/rook", "cmd")

func main() {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, false))
	capnslog.SetGlobalLogLevel(capnslog.NOTICE)

	app := &cli.App{
		Name:  "rook",
		Usage: "rook type checker",
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			if ec, ok := err.(cli.ExitCoder); ok {
				if msg := ec.Error(); msg != "" {
					fmt.Fprintln(os.Stderr, msg)
				}
				os.Exit(ec.ExitCode())
			}
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "create a project file in the current directory",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no project name provided", 1)
					}
					if _, err := os.Stat(config.FileName); err == nil {
						return cli.Exit(config.FileName+" already exists", 1)
					}
					return config.Default(name).Save(".")
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "statements", Usage: "lex with the statement-oriented token set; parsing commands always use the expression token set"},
				},
				Action: func(c *cli.Context) error {
					source, err := readSource(c.Args().First())
					if err != nil {
						return err
					}
					p := project()
					if p == nil {
						p = config.Default("")
					}
					if c.Bool("statements") {
						p.Lexer = config.StatementLexer
					}
					p.Lex(source).Range(func(tok lexer.Token) bool {
						fmt.Println(tok)
						return true
					})
					return nil
				},
			},
			{
				Name:      "parse",
				Usage:     "parse a file and print its syntax tree",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dump", Usage: "dump the tree structure"},
				},
				Action: func(c *cli.Context) error {
					source, err := readSource(c.Args().First())
					if err != nil {
						return err
					}
					program, err := grammar.NewGrammar(grammar.MaxNesting(projectMaxNesting())).ParseProgram(source)
					if err != nil {
						return cli.Exit(c.Args().First()+" "+err.Error(), 1)
					}
					if c.Bool("dump") {
						repr.Println(program)
					} else {
						fmt.Println(ast.String(program))
					}
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "type-check files, or the sources of the project in the current directory",
				ArgsUsage: "[FILE...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "types", Usage: "print the type of each function"},
					&cli.BoolFlag{Name: "lambdas", Usage: "print the type of each lambda"},
				},
				Action: check,
			},
			{
				Name:   "repl",
				Usage:  "check classes, functions, and expressions interactively",
				Action: func(c *cli.Context) error { return repl(projectMaxNesting()) },
			},
		},
	}

	app.Run(os.Args)
}

func readSource(path string) (string, error) {
	if path == "" {
		return "", cli.Exit("no file provided", 1)
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", tracerr.Wrap(err)
	}
	return string(data), nil
}

// project loads the project file in the current directory, if there is one.
func project() *config.Project {
	if _, err := os.Stat(config.FileName); err != nil {
		return nil
	}
	p, err := config.Load(".")
	if err != nil {
		plog.Warningf("ignoring %s: %v", config.FileName, err)
		return nil
	}
	p.ApplyLogLevel()
	return p
}

func projectMaxNesting() int {
	if p := project(); p != nil {
		return p.MaxNesting
	}
	return 0
}

func check(c *cli.Context) error {
	files := c.Args().Slice()
	maxNesting := 0
	if p := project(); p != nil {
		maxNesting = p.MaxNesting
		if len(files) == 0 {
			var err error
			if files, err = p.Files(); err != nil {
				return err
			}
		}
	}
	if len(files) == 0 {
		return cli.Exit("no files provided", 1)
	}

	failed := 0
	for _, file := range files {
		source, err := readSource(file)
		if err != nil {
			return err
		}
		plog.Debugf("checking %s", file)
		result := rook.Compile(source, rook.WithMaxNesting(maxNesting))
		for _, cerr := range result.Errors {
			fmt.Fprintf(os.Stderr, "%s %s\n", filepath.Base(file), cerr)
		}
		if result.HasErrors() {
			failed++
			continue
		}
		if c.Bool("types") {
			printTypes(result)
		}
		if c.Bool("lambdas") {
			printLambdas(filepath.Base(file), result)
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d files failed to check", failed, len(files)), 1)
	}
	return nil
}

func printTypes(result *rook.Result) {
	for _, class := range result.Program.Classes {
		for _, m := range class.Methods {
			fmt.Printf("%s.%s : %s\n", class.Name, m.Name, types.TypeString(result.Normalize(m.DeclaredType())))
		}
	}
	for _, fn := range result.Program.Functions {
		fmt.Printf("%s : %s\n", fn.Name, types.TypeString(result.Normalize(fn.DeclaredType())))
	}
}

func printLambdas(file string, result *rook.Result) {
	ast.WalkProgram(result.Program, func(e ast.Expr) {
		if lambda, ok := e.(*ast.Lambda); ok {
			fmt.Printf("%s %s: %s : %s\n", file, lambda.Position, ast.ExprString(lambda), types.TypeString(result.Normalize(lambda.Type())))
		}
	})
}
