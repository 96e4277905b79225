package transgen

import (
	"github.com/ObjectsCountries/KtaneSouvenir/internal/catalog"
)

// Record is one merged entry of the generated region, ready for rendering or
// export. Exactly one Record exists per canonical question, in catalog order.
type Record struct {
	ID     string
	Module string // owning module name
	Text   string
	// TextTranslated is false when Text is the canonical English fallback.
	TextTranslated bool
	// ModuleOverride is the translated module display name, empty unless a
	// prior artifact carried one.
	ModuleOverride string
	Answers        []Pair
	Arguments      []Pair
}

// Pair maps a canonical literal to its translated form. Untranslated pairs
// carry the literal on both sides.
type Pair struct {
	Literal    string
	Translated string
}

// Merge applies the merge policy to every canonical question. Override ids
// with no canonical counterpart contribute nothing to the result.
func Merge(cat *catalog.Catalog, ov map[string]catalog.Override) []Record {
	records := make([]Record, 0, cat.QuestionCount())
	for _, group := range cat.Grouped() {
		for _, q := range group.Questions {
			records = append(records, mergeQuestion(q, ov[q.ID]))
		}
	}
	return records
}

func mergeQuestion(q catalog.Question, ov catalog.Override) Record {
	r := Record{ID: q.ID, Module: q.Module, Text: q.Text, ModuleOverride: ov.Module}
	if ov.Text != "" {
		r.Text = ov.Text
		r.TextTranslated = true
	}

	if q.TranslateAnswers && len(q.Answers) > 0 {
		r.Answers = make([]Pair, 0, len(q.Answers))
		for _, lit := range q.Answers {
			r.Answers = append(r.Answers, Pair{Literal: lit, Translated: translated(ov.Answers, lit)})
		}
	}

	if lits := q.TranslatableLiterals(); len(lits) > 0 {
		r.Arguments = make([]Pair, 0, len(lits))
		for _, lit := range lits {
			r.Arguments = append(r.Arguments, Pair{Literal: lit, Translated: translated(ov.Arguments, lit)})
		}
	}

	return r
}

// translated keeps whatever the prior artifact said for the literal, even an
// explicit empty string. Only a missing key falls back to the literal itself.
func translated(ov map[string]string, literal string) string {
	if t, ok := ov[literal]; ok {
		return t
	}
	return literal
}
