package overrides

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/catalog"
)

// Parse extracts per-question overrides from prior artifact source. The
// filename is used for parse error positions only. A file with no translation
// table yields an empty map; a file that is not valid Go is an error, because
// overwriting it could destroy translator work we failed to read.
func Parse(filename string, src []byte) (map[string]catalog.Override, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parse prior artifact: %w", err)
	}

	table := findTable(f)
	if table == nil {
		return map[string]catalog.Override{}, nil
	}

	out := make(map[string]catalog.Override, len(table.Elts))
	for _, elt := range table.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		id, ok := stringLit(kv.Key)
		if !ok {
			continue
		}
		entry, ok := kv.Value.(*ast.CompositeLit)
		if !ok {
			continue
		}
		out[id] = parseEntry(entry)
	}
	return out, nil
}

// findTable returns the first package-level var value that is a string-keyed
// map composite literal.
func findTable(f *ast.File) *ast.CompositeLit {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, val := range vs.Values {
				cl, ok := val.(*ast.CompositeLit)
				if !ok {
					continue
				}
				if isStringKeyedMap(cl.Type) {
					return cl
				}
			}
		}
	}
	return nil
}

func isStringKeyedMap(expr ast.Expr) bool {
	mt, ok := expr.(*ast.MapType)
	if !ok {
		return false
	}
	key, ok := mt.Key.(*ast.Ident)
	return ok && key.Name == "string"
}

func parseEntry(entry *ast.CompositeLit) catalog.Override {
	var ov catalog.Override
	for _, elt := range entry.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		field, ok := kv.Key.(*ast.Ident)
		if !ok {
			continue
		}
		switch field.Name {
		case "Text":
			if s, ok := stringLit(kv.Value); ok {
				ov.Text = s
			}
		case "Module":
			if s, ok := stringLit(kv.Value); ok {
				ov.Module = s
			}
		case "Answers":
			ov.Answers = stringMap(kv.Value)
		case "Arguments":
			ov.Arguments = stringMap(kv.Value)
		}
	}
	return ov
}

func stringMap(expr ast.Expr) map[string]string {
	cl, ok := expr.(*ast.CompositeLit)
	if !ok {
		return nil
	}
	m := make(map[string]string, len(cl.Elts))
	for _, elt := range cl.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		k, kok := stringLit(kv.Key)
		v, vok := stringLit(kv.Value)
		if !kok || !vok {
			continue
		}
		m[k] = v
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func stringLit(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return s, true
}
