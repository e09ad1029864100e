// Package expr implements the column expression tree: an immutable,
// inspectable variant/AST standing in for a closure-captured expression
// graph. Every node type exposes Key (a stable string identity used for
// dedup and fingerprinting upstream), Required (the base columns it
// reads), Boolean (whether it evaluates to a boolean mask), Depth (tree
// depth) and Eval (actual row-wise evaluation against a table), per
// spec §3 "Column expression node".
package expr

import "github.com/colqhq/colq/columnar"

// Expr is one node of the expression tree.
type Expr interface {
	Key() string
	Required() []string
	Boolean() bool
	Depth() int
	Eval(table columnar.Table) (columnar.Column, error)
}

func maxDepth(children ...Expr) int {
	max := 0
	for _, c := range children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

func requiredOf(children ...Expr) []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range children {
		for _, r := range c.Required() {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}
