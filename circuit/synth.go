// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package circuit

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/1cy1c3/ibdd"
)

// Synthesize builds one Handle per declared input and gate of mod against m,
// in declaration order, exactly as BDDParser::parseGate drives Manager::ite
// one gate at a time. m must have at least len(mod.Inputs) variables; input
// i is bound to m.Ithvar(i).
//
// The returned map holds every named signal (inputs and gates), so a caller
// can look up an intermediate value, not just the declared outputs.
func Synthesize(m *sbdd.Manager, mod *Module) (map[string]sbdd.Handle, error) {
	if len(mod.Inputs) > m.Varnum() {
		return nil, fmt.Errorf("circuit: module %q declares %d inputs but manager only has %d variables", mod.Name, len(mod.Inputs), m.Varnum())
	}

	declared := mapset.NewSet[string]()
	values := make(map[string]sbdd.Handle, len(mod.Inputs)+len(mod.Gates))
	for i, name := range mod.Inputs {
		if declared.Contains(name) {
			return nil, fmt.Errorf("circuit: input %q declared twice", name)
		}
		declared.Add(name)
		values[name] = m.Ithvar(i)
	}

	for _, g := range mod.Gates {
		operands := make([]sbdd.Handle, len(g.Inputs))
		for i, in := range g.Inputs {
			v, ok := values[in]
			if !ok {
				return nil, fmt.Errorf("circuit: gate %q references undefined signal %q", g.Output, in)
			}
			operands[i] = v
		}

		var res sbdd.Handle
		switch g.Op {
		case "":
			res = operands[0]
		case "not":
			res = m.Not(operands[0])
		case "xor":
			res = m.Xor(operands[0], operands[1])
		case "and":
			res = foldBinary(m.And, operands)
		case "or":
			res = foldBinary(m.Or, operands)
		case "nand":
			res = m.Not(foldBinary(m.And, operands))
		case "nor":
			res = m.Not(foldBinary(m.Or, operands))
		default:
			return nil, fmt.Errorf("circuit: gate %q has unknown operator %q", g.Output, g.Op)
		}
		values[g.Output] = res
		declared.Add(g.Output)
	}

	for _, out := range mod.Outputs {
		if !declared.Contains(out) {
			return nil, fmt.Errorf("circuit: declared output %q was never assigned", out)
		}
	}
	return values, nil
}

func foldBinary(op func(a, b sbdd.Handle) sbdd.Handle, operands []sbdd.Handle) sbdd.Handle {
	res := operands[0]
	for _, o := range operands[1:] {
		res = op(res, o)
	}
	return res
}
