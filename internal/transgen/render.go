package transgen

import (
	"strings"
	"unicode/utf8"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/catalog"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/genregion"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/strlit"
)

// Generator renders the generated region for one language and splices it into
// an existing artifact. The markers and ordinal word come from configuration.
type Generator struct {
	markers genregion.Markers
	ordinal string
}

func New(markers genregion.Markers, ordinalWord string) *Generator {
	return &Generator{markers: markers, ordinal: ordinalWord}
}

// Generate returns the full new artifact text. The error is a
// genregion.NotFoundError when the existing content carries no usable marker
// pair; everything outside the region is left byte-identical.
func (g *Generator) Generate(cat *catalog.Catalog, ov map[string]catalog.Override, existing string) (string, error) {
	return genregion.Splice(existing, g.markers, g.Block(cat, ov))
}

// Block renders the region lines: per module a heading comment, per question
// an optional preview comment and the merged map entry. Layout follows gofmt
// so regenerated artifacts survive formatting untouched.
func (g *Generator) Block(cat *catalog.Catalog, ov map[string]catalog.Override) []string {
	var lines []string
	for i, group := range cat.Grouped() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "\t// ── "+group.Module.Name+" ──")
		for _, q := range group.Questions {
			if preview, err := g.preview(q); err == nil {
				lines = append(lines, "\t// "+preview)
			}
			lines = append(lines, renderRecord(mergeQuestion(q, ov[q.ID]))...)
		}
	}
	return lines
}

// preview assembles the English question as it appears in game: {0} is the
// module display name, {1} the ordinal word, {2} onward the first example
// argument group.
func (g *Generator) preview(q catalog.Question) (string, error) {
	args := append([]string{q.DisplayModule(), g.ordinal}, q.FirstArgumentGroup()...)
	s, err := Subst(q.Text, args)
	if err != nil {
		return "", err
	}
	return q.DisplayModule() + ": “" + s + "”", nil
}

func renderRecord(r Record) []string {
	lines := []string{"\t" + quote(r.ID) + ": {"}

	textPad := " "
	if r.ModuleOverride != "" {
		textPad = "   "
	}
	lines = append(lines, "\t\tText:"+textPad+quote(r.Text)+",")
	if r.ModuleOverride != "" {
		lines = append(lines, "\t\tModule: "+quote(r.ModuleOverride)+",")
	}
	lines = append(lines, renderPairs("Answers", r.Answers)...)
	lines = append(lines, renderPairs("Arguments", r.Arguments)...)

	return append(lines, "\t},")
}

func renderPairs(field string, pairs []Pair) []string {
	if len(pairs) == 0 {
		return nil
	}

	width := 0
	for _, p := range pairs {
		if n := utf8.RuneCountInString(quote(p.Literal)) + 1; n > width {
			width = n
		}
	}

	lines := make([]string, 0, len(pairs)+2)
	lines = append(lines, "\t\t"+field+": map[string]string{")
	for _, p := range pairs {
		key := quote(p.Literal) + ":"
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(key)+1)
		lines = append(lines, "\t\t\t"+key+pad+quote(p.Translated)+",")
	}
	return append(lines, "\t\t},")
}

func quote(s string) string {
	return `"` + strlit.Escape(s) + `"`
}
