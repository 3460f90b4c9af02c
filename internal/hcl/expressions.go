package hcl

import (
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// bodyExpressions returns the attribute expressions of body and of its
// nested blocks. Bodies not produced by the native syntax parser yield none.
func bodyExpressions(body hcl.Body) []hcl.Expression {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}
	var out []hcl.Expression
	for _, attr := range sb.Attributes {
		out = append(out, attr.Expr)
	}
	for _, block := range sb.Blocks {
		out = append(out, bodyExpressions(block.Body)...)
	}
	return out
}

// analyzeExpressions lists the env attributes and the functions the
// expressions use. Both results are sorted and free of duplicates.
func analyzeExpressions(exprs []hcl.Expression) (envVars, functions []string) {
	for _, expr := range exprs {
		for _, traversal := range expr.Variables() {
			if traversal.RootName() != "env" || len(traversal) < 2 {
				continue
			}
			if attr, ok := traversal[1].(hcl.TraverseAttr); ok {
				envVars = append(envVars, attr.Name)
			}
		}
		if syntaxExpr, ok := expr.(hclsyntax.Expression); ok {
			_ = hclsyntax.VisitAll(syntaxExpr, func(n hclsyntax.Node) hcl.Diagnostics {
				if call, ok := n.(*hclsyntax.FunctionCallExpr); ok {
					functions = append(functions, call.Name)
				}
				return nil
			})
		}
	}
	slices.Sort(envVars)
	slices.Sort(functions)
	return slices.Compact(envVars), slices.Compact(functions)
}
