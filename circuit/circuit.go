// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package circuit parses the gate-level trace file format and drives a
// sbdd.Manager to synthesize the Boolean function of every declared output.
//
// The grammar is a small, line-oriented format borrowed from ISCAS-85 style
// benchmark circuits: a MODULE header, an INPUT list, an OUTPUT list, and a
// STRUCTURE section listing one gate per line, terminated by ENDMODULE.
// Lines starting with # are comments. It is grounded directly on the manual
// character-buffer scanning in BDDParser.cpp/.hpp, reworked as a line
// scanner instead of a byte-at-a-time sscanf state machine, since Go's
// bufio.Scanner already gives line-at-a-time iteration for free.
package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Gate is one STRUCTURE declaration: output = op(inputs...), or the bare
// alias form output = input.
type Gate struct {
	Output string
	Op     string // "", "not", "xor", "and", "or", "nand", "nor"
	Inputs []string
}

// Module is the parsed form of a trace file.
type Module struct {
	Name    string
	Inputs  []string
	Outputs []string
	Gates   []Gate
}

// SyntaxError reports a malformed trace file, with the 1-based line number
// and the offending text.
type SyntaxError struct {
	Line int
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("circuit: line %d: %s: %q", e.Line, e.Msg, e.Text)
}

var logicalOperators = map[string]bool{
	"not": true, "xor": true, "and": true, "or": true, "nand": true, "nor": true,
}

// Parse reads a trace file from r and returns its parsed form, or a
// *SyntaxError on the first malformed line.
func Parse(r io.Reader) (*Module, error) {
	mod := &Module{}
	sc := bufio.NewScanner(r)
	lineno := 0
	section := ""

	nextLine := func() (string, bool) {
		for sc.Scan() {
			lineno++
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		switch {
		case strings.HasPrefix(line, "MODULE"):
			mod.Name = strings.TrimSpace(strings.TrimPrefix(line, "MODULE"))
			section = ""
		case line == "INPUT":
			section = "INPUT"
		case line == "OUTPUT":
			section = "OUTPUT"
		case line == "STRUCTURE":
			section = "STRUCTURE"
		case line == "ENDMODULE":
			return mod, nil
		default:
			switch section {
			case "INPUT":
				mod.Inputs = append(mod.Inputs, splitIdentList(line)...)
			case "OUTPUT":
				mod.Outputs = append(mod.Outputs, splitIdentList(line)...)
			case "STRUCTURE":
				g, err := parseGate(line)
				if err != nil {
					return nil, &SyntaxError{Line: lineno, Text: line, Msg: err.Error()}
				}
				mod.Gates = append(mod.Gates, g)
			default:
				return nil, &SyntaxError{Line: lineno, Text: line, Msg: "unexpected line outside any section"}
			}
		}
	}
	return nil, &SyntaxError{Line: lineno, Text: "", Msg: "missing ENDMODULE"}
}

func splitIdentList(line string) []string {
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")
	var out []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseGate parses a single STRUCTURE line: either "out = op(in, in, ...);"
// or the bare alias form "out = in;".
func parseGate(line string) (Gate, error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")
	eq := strings.Index(line, "=")
	if eq < 0 {
		return Gate{}, fmt.Errorf("missing '=' in gate declaration")
	}
	out := strings.TrimSpace(line[:eq])
	rhs := strings.TrimSpace(line[eq+1:])
	if out == "" {
		return Gate{}, fmt.Errorf("empty gate output name")
	}

	paren := strings.Index(rhs, "(")
	if paren < 0 {
		// bare alias: out = in;
		if rhs == "" {
			return Gate{}, fmt.Errorf("empty gate right-hand side")
		}
		return Gate{Output: out, Op: "", Inputs: []string{rhs}}, nil
	}
	op := strings.ToLower(strings.TrimSpace(rhs[:paren]))
	if !logicalOperators[op] {
		return Gate{}, fmt.Errorf("unknown operator %q", op)
	}
	if !strings.HasSuffix(rhs, ")") {
		return Gate{}, fmt.Errorf("missing closing parenthesis")
	}
	args := rhs[paren+1 : len(rhs)-1]
	inputs := splitIdentList(args)
	if len(inputs) == 0 {
		return Gate{}, fmt.Errorf("operator %q has no operands", op)
	}
	if op == "not" && len(inputs) != 1 {
		return Gate{}, fmt.Errorf("not takes exactly one operand, got %d", len(inputs))
	}
	if op == "xor" && len(inputs) != 2 {
		return Gate{}, fmt.Errorf("xor takes exactly two operands, got %d", len(inputs))
	}
	return Gate{Output: out, Op: op, Inputs: inputs}, nil
}
