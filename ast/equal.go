// SPDX-FileCopyrightText: © 2026 The rlx authors <https://github.com/golangee/rlx/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

// Equal reports whether a and b describe the same rule structure.
// Positions are ignored. A Group equals its content, a Sequence of a single
// item equals the item, and a repetition of a single Sequence equals the
// repetition of the sequence items, e.g. (a b)* and ((a b))* are equal.
func Equal(a, b Expr) bool {
	a, b = normalize(a), normalize(b)

	switch x := a.(type) {
	case nil:
		return b == nil
	case *Val:
		y, ok := b.(*Val)
		return ok && x.Token.Kind == y.Token.Kind && x.Token.Text == y.Token.Text
	case *Sequence:
		y, ok := b.(*Sequence)
		return ok && equalList(x.Items, y.Items)
	case *Or:
		y, ok := b.(*Or)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Many:
		y, ok := b.(*Many)
		return ok && equalList(repeated(x.Items), repeated(y.Items))
	case *ManyOne:
		y, ok := b.(*ManyOne)
		return ok && equalList(repeated(x.Items), repeated(y.Items))
	case *Optional:
		y, ok := b.(*Optional)
		return ok && Equal(x.Expr, y.Expr)
	case *Assign:
		y, ok := b.(*Assign)
		return ok && x.Name.Text == y.Name.Text && Equal(x.Value, y.Value)
	}

	return false
}

// EqualRules compares two rule lists with Equal.
func EqualRules(a, b []*Assign) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func equalList(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

// normalize removes the nodes which do not change the meaning of an expression.
func normalize(e Expr) Expr {
	for {
		switch x := e.(type) {
		case *Group:
			e = x.Expr
		case *Sequence:
			if len(x.Items) != 1 {
				return e
			}

			e = x.Items[0]
		default:
			return e
		}
	}
}

func repeated(items []Expr) []Expr {
	if len(items) == 1 {
		if seq, ok := normalize(items[0]).(*Sequence); ok {
			return seq.Items
		}
	}

	return items
}
