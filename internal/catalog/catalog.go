package catalog

// Question is the canonical specification of one Souvenir question. Identity is
// the symbolic ID, stable across regenerations; everything else describes how
// the question is asked and which parts of it translators may localize.
type Question struct {
	ID         string `json:"id"`
	Module     string `json:"module"`
	UseArticle bool   `json:"useArticle"`
	Text       string `json:"text"`

	Answers          []string `json:"answers,omitempty"`
	TranslateAnswers bool     `json:"translateAnswers,omitempty"`

	// Arguments holds example extra format arguments, partitioned into groups
	// of ArgumentGroupSize. TranslatableArguments flags which position within
	// each group carries translator-visible text.
	Arguments             []string `json:"arguments,omitempty"`
	ArgumentGroupSize     int      `json:"argumentGroupSize,omitempty"`
	TranslatableArguments []bool   `json:"translatableArguments,omitempty"`
}

// Module pairs a supported bomb module with the contributor who implemented
// its questions.
type Module struct {
	Name        string `json:"name"`
	Contributor string `json:"contributor"`
}

// Catalog is the canonical snapshot of all modules and questions, read once
// per run.
type Catalog struct {
	Modules   []Module   `json:"modules"`
	Questions []Question `json:"questions"`
}

// Override carries previously entered translations for a single question,
// recovered from a prior generated artifact. Every field is optional: an empty
// Text or Module means no override, a nil map means no translated entries.
// Overrides are advisory input only; ids that no longer exist in the canonical
// catalog are dropped during the merge.
type Override struct {
	Text      string
	Module    string
	Answers   map[string]string
	Arguments map[string]string
}

// Group is one owning module together with its questions, in catalog order.
type Group struct {
	Module    Module
	Questions []Question
}

// DisplayModule returns the module name the way it appears in rendered
// question text, with the definite article when the question calls for it.
func (q Question) DisplayModule() string {
	if q.UseArticle {
		return "The " + q.Module
	}
	return q.Module
}

// TranslatableLiterals returns the example-argument literals whose position in
// the group-size partition is flagged translatable, distinct and in first
// occurrence order.
func (q Question) TranslatableLiterals() []string {
	if len(q.Arguments) == 0 || q.ArgumentGroupSize <= 0 {
		return nil
	}
	flagged := false
	for _, f := range q.TranslatableArguments {
		if f {
			flagged = true
			break
		}
	}
	if !flagged {
		return nil
	}

	seen := make(map[string]struct{}, len(q.Arguments))
	out := make([]string, 0, len(q.Arguments))
	for i, arg := range q.Arguments {
		pos := i % q.ArgumentGroupSize
		if pos >= len(q.TranslatableArguments) || !q.TranslatableArguments[pos] {
			continue
		}
		if _, ok := seen[arg]; ok {
			continue
		}
		seen[arg] = struct{}{}
		out = append(out, arg)
	}
	return out
}

// FirstArgumentGroup returns the first group of example arguments, used for
// the preview line. Nil when the question declares none.
func (q Question) FirstArgumentGroup() []string {
	if len(q.Arguments) == 0 || q.ArgumentGroupSize <= 0 {
		return nil
	}
	n := q.ArgumentGroupSize
	if n > len(q.Arguments) {
		n = len(q.Arguments)
	}
	return q.Arguments[:n]
}

// Grouped returns questions grouped by owning module, modules in declaration
// order, questions in declaration order within each module. Modules without
// questions are omitted.
func (c *Catalog) Grouped() []Group {
	byModule := make(map[string][]Question, len(c.Modules))
	for _, q := range c.Questions {
		byModule[q.Module] = append(byModule[q.Module], q)
	}

	groups := make([]Group, 0, len(c.Modules))
	for _, m := range c.Modules {
		qs, ok := byModule[m.Name]
		if !ok {
			continue
		}
		groups = append(groups, Group{Module: m, Questions: qs})
	}
	return groups
}

// QuestionCount returns the number of canonical questions.
func (c *Catalog) QuestionCount() int {
	return len(c.Questions)
}
