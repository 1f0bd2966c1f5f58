// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

// Children returns the direct child expressions of e.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *Sequence:
		return n.Items
	case *Or:
		return []Expr{n.Left, n.Right}
	case *Many:
		return n.Items
	case *ManyOne:
		return n.Items
	case *Optional:
		return []Expr{n.Expr}
	case *Group:
		return []Expr{n.Expr}
	case *Assign:
		return []Expr{n.Value}
	default:
		return nil
	}
}

// Walk visits e and its descendants in pre-order. If fn returns false,
// the children of the current node are skipped.
func Walk(e Expr, fn func(e Expr) bool) {
	if e == nil || !fn(e) {
		return
	}

	for _, c := range Children(e) {
		Walk(c, fn)
	}
}

// Names returns the rule names in declaration order.
func Names(rules []*Assign) []string {
	res := make([]string, 0, len(rules))
	for _, r := range rules {
		res = append(res, r.Name.Text)
	}

	return res
}

// References returns the distinct names referenced by the value of the rule, in order of appearance.
func References(rule *Assign) []string {
	var res []string

	seen := map[string]bool{}

	Walk(rule.Value, func(e Expr) bool {
		if v, ok := e.(*Val); ok && !seen[v.Name()] {
			seen[v.Name()] = true
			res = append(res, v.Name())
		}

		return true
	})

	return res
}
