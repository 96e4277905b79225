package overrides

import (
	"reflect"
	"testing"
)

const artifact = `package translations

// Notes for translators stay outside the generated region.

var german = map[string]Question{
	// souvenirgen:begin
	// The Wires: "What was the color of the first wire in The Wires?"
	"wiresColor": {
		Text:   "Welche Farbe hatte der {1} Draht in {0}?",
		Module: "Die Drähte",
		Answers: map[string]string{
			"Red":  "Rot",
			"Blue": "Blau",
		},
		Arguments: map[string]string{
			"top": "oben",
		},
	},
	"mazeStart": {
		Text: "Wo hast du in {0} angefangen?",
	},
	"untouched": {},
	// souvenirgen:end
}
`

func TestParseRecoversEntries(t *testing.T) {
	got, err := Parse("de.go", []byte(artifact))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("recovered %d entries, want 3", len(got))
	}

	wires := got["wiresColor"]
	if wires.Text != "Welche Farbe hatte der {1} Draht in {0}?" {
		t.Errorf("Text = %q", wires.Text)
	}
	if wires.Module != "Die Drähte" {
		t.Errorf("Module = %q", wires.Module)
	}
	wantAnswers := map[string]string{"Red": "Rot", "Blue": "Blau"}
	if !reflect.DeepEqual(wires.Answers, wantAnswers) {
		t.Errorf("Answers = %v, want %v", wires.Answers, wantAnswers)
	}
	wantArgs := map[string]string{"top": "oben"}
	if !reflect.DeepEqual(wires.Arguments, wantArgs) {
		t.Errorf("Arguments = %v, want %v", wires.Arguments, wantArgs)
	}

	maze := got["mazeStart"]
	if maze.Text != "Wo hast du in {0} angefangen?" {
		t.Errorf("mazeStart Text = %q", maze.Text)
	}
	if maze.Module != "" || maze.Answers != nil || maze.Arguments != nil {
		t.Errorf("mazeStart has unexpected fields: %+v", maze)
	}

	if empty, ok := got["untouched"]; !ok || empty.Text != "" {
		t.Errorf("empty entry not recovered as zero override: %+v, ok=%v", empty, ok)
	}
}

func TestParseRawStringValues(t *testing.T) {
	src := `package translations

var table = map[string]Question{
	"q": {Text: ` + "`raw \"quoted\" text`" + `},
}
`
	got, err := Parse("x.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got["q"].Text != `raw "quoted" text` {
		t.Errorf("Text = %q", got["q"].Text)
	}
}

func TestParseSkipsNonLiteralShapes(t *testing.T) {
	src := `package translations

const prefix = "Der "

var table = map[string]Question{
	"concat":  {Text: "a" + "b"},
	"ident":   {Text: prefix},
	"call":    {Text: name()},
	"literal": {Text: "kept"},
}
`
	got, err := Parse("x.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got["concat"].Text != "" || got["ident"].Text != "" || got["call"].Text != "" {
		t.Errorf("non-literal text recovered: %+v", got)
	}
	if got["literal"].Text != "kept" {
		t.Errorf("literal entry lost: %+v", got["literal"])
	}
}

func TestParseNoTable(t *testing.T) {
	src := `package translations

var count = 3
`
	got, err := Parse("x.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("recovered %d entries from table-less file", len(got))
	}
}

func TestParseInvalidGo(t *testing.T) {
	if _, err := Parse("x.go", []byte("package translations\n\nvar table = map[string]Question{")); err == nil {
		t.Fatal("Parse() succeeded on broken source, want error")
	}
}

func TestParseFirstTableWins(t *testing.T) {
	src := `package translations

var first = map[string]Question{
	"a": {Text: "from first"},
}

var second = map[string]Question{
	"a": {Text: "from second"},
}
`
	got, err := Parse("x.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got["a"].Text != "from first" {
		t.Errorf("Text = %q, want %q", got["a"].Text, "from first")
	}
}
