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

// Package config reads and writes project files.
package config

import (
	"io/ioutil"
	"path/filepath"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"

	"github.com/wdamron/rook/grammar"
	"github.com/wdamron/rook/lexer"
)

// FileName is the name of the project file within a project directory.
const FileName = "rook.yaml"

// Lexer variants
const (
	ExpressionLexer = "expression"
	StatementLexer  = "statement"
)

// Project describes a collection of sources compiled together.
type Project struct {
	Name string `yaml:"name"`

	// Sources are glob patterns relative to the project directory.
	Sources []string `yaml:"sources"`

	// Lexer selects the token set used to list tokens. Parsing always uses the
	// expression token set.
	Lexer      string `yaml:"lexer,omitempty"`
	MaxNesting int    `yaml:"maxNesting,omitempty"`
	LogLevel   string `yaml:"logLevel,omitempty"`

	dir string
}

// Default returns the configuration of a new project.
func Default(name string) *Project {
	return &Project{
		Name:     name,
		Sources:  []string{"*.rook"},
		Lexer:    ExpressionLexer,
		LogLevel: "NOTICE",
		dir:      ".",
	}
}

// Parse decodes a project file. Missing fields take their default values.
func Parse(data []byte) (*Project, error) {
	p := Default("")
	if err := yaml.UnmarshalStrict(data, p); err != nil {
		return nil, tracerr.Wrap(err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads the project file within dir.
func Load(dir string) (*Project, error) {
	data, err := ioutil.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	p.dir = dir
	return p, nil
}

// Save writes the project file within dir.
func (p *Project) Save(dir string) error {
	out, err := yaml.Marshal(p)
	if err != nil {
		return tracerr.Wrap(err)
	}
	return tracerr.Wrap(ioutil.WriteFile(filepath.Join(dir, FileName), out, 0644))
}

func (p *Project) Validate() error {
	switch p.Lexer {
	case "", ExpressionLexer, StatementLexer:
	default:
		return tracerr.Errorf("Unknown lexer %q", p.Lexer)
	}
	if p.MaxNesting < 0 {
		return tracerr.Errorf("Invalid maxNesting %d", p.MaxNesting)
	}
	if p.LogLevel != "" {
		if _, err := capnslog.ParseLevel(p.LogLevel); err != nil {
			return tracerr.Wrap(err)
		}
	}
	return nil
}

// Files expands the source patterns, in order, without duplicates.
func (p *Project) Files() ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range p.Sources {
		matches, err := filepath.Glob(filepath.Join(p.dir, pattern))
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// Lex creates a lexer over source with the token set selected by the project.
func (p *Project) Lex(source string) *lexer.Lexer {
	if p.Lexer == StatementLexer {
		return grammar.LexStatements(source)
	}
	return grammar.Lex(source)
}

// ApplyLogLevel sets the level of every package logger.
func (p *Project) ApplyLogLevel() {
	if p.LogLevel == "" {
		return
	}
	if level, err := capnslog.ParseLevel(p.LogLevel); err == nil {
		capnslog.SetGlobalLogLevel(level)
	}
}
