package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statesearch/puzzles"
	"github.com/katalvlaran/statesearch/search"
)

// ErrProblem is returned for problem files that cannot be solved as written.
var ErrProblem = errors.New("statesearch: invalid problem")

// Problem is the YAML description of one puzzle. Exactly the section
// named by Kind must be present.
type Problem struct {
	Kind      string `yaml:"kind"`
	Algorithm string `yaml:"algorithm,omitempty"`
	MaxDepth  int    `yaml:"max_depth,omitempty"`

	Line  *LineSpec  `yaml:"line,omitempty"`
	Maze  *MazeSpec  `yaml:"maze,omitempty"`
	Tiles *TilesSpec `yaml:"tiles,omitempty"`
	Jugs  *JugsSpec  `yaml:"jugs,omitempty"`
	Graph *GraphSpec `yaml:"graph,omitempty"`
}

// LineSpec describes an integer walk.
type LineSpec struct {
	Start  int `yaml:"start"`
	Target int `yaml:"target"`
}

// MazeSpec describes a text maze; see puzzles.ParseMaze.
type MazeSpec struct {
	Rows     []string `yaml:"rows"`
	Diagonal bool     `yaml:"diagonal,omitempty"`
}

// TilesSpec describes a sliding-tile board.
type TilesSpec struct {
	Board string `yaml:"board"`
}

// JugsSpec describes a two-jug measuring problem.
type JugsSpec struct {
	CapA   int `yaml:"cap_a"`
	CapB   int `yaml:"cap_b"`
	Target int `yaml:"target"`
}

// GraphSpec describes an explicit graph.
type GraphSpec struct {
	Edges map[string][]string `yaml:"edges"`
	Start string              `yaml:"start"`
	Goals []string            `yaml:"goals"`
}

// LoadProblem decodes a problem file, rejecting unknown keys.
func LoadProblem(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProblem, err)
	}
	p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Problem) validate() error {
	present := map[string]bool{
		"line":  p.Line != nil,
		"maze":  p.Maze != nil,
		"tiles": p.Tiles != nil,
		"jugs":  p.Jugs != nil,
		"graph": p.Graph != nil,
	}
	has, known := present[p.Kind]
	if !known {
		return fmt.Errorf("%w: unknown kind %q", ErrProblem, p.Kind)
	}
	if !has {
		return fmt.Errorf("%w: kind %q needs a %q section", ErrProblem, p.Kind, p.Kind)
	}
	for kind, ok := range present {
		if ok && kind != p.Kind {
			return fmt.Errorf("%w: section %q does not match kind %q", ErrProblem, kind, p.Kind)
		}
	}
	if p.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth cannot be negative", ErrProblem)
	}
	return nil
}

// solve builds the engine for the problem's kind and prints its result.
func (p *Problem) solve(cmd *cobra.Command, opts []search.Option) error {
	switch p.Kind {
	case "line":
		eng, err := search.NewFromState(puzzles.Line{Value: p.Line.Start, Target: p.Line.Target}, opts...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), eng.Run())

	case "maze":
		conn := puzzles.Conn4
		if p.Maze.Diagonal {
			conn = puzzles.Conn8
		}
		m, start, goal, err := puzzles.ParseMaze(strings.Join(p.Maze.Rows, "\n"), conn)
		if err != nil {
			return err
		}
		eng, err := m.Solver(start, goal, opts...)
		if err != nil {
			return err
		}
		res := eng.Run()
		if res.Found {
			fmt.Fprintln(cmd.OutOrStdout(), m.Render(res.Path))
		}
		return printResult(cmd.OutOrStdout(), res)

	case "tiles":
		board, err := puzzles.ParseTiles(p.Tiles.Board)
		if err != nil {
			return err
		}
		if !board.Solvable() {
			return fmt.Errorf("%w: tiles %q cannot reach the solved board", ErrProblem, p.Tiles.Board)
		}
		eng, err := search.NewFromState(board, opts...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), eng.Run())

	case "jugs":
		eng, err := puzzles.JugProblem{CapA: p.Jugs.CapA, CapB: p.Jugs.CapB, Target: p.Jugs.Target}.Solver(opts...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), eng.Run())

	case "graph":
		eng, err := puzzles.NewGraph(p.Graph.Edges).Solver(p.Graph.Start, p.Graph.Goals, opts...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), eng.Run())
	}

	return fmt.Errorf("%w: unknown kind %q", ErrProblem, p.Kind)
}
