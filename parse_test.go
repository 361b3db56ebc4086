package polish

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	input := "  + 3   4 \n3\t4 +\r\n\n* + 2 3 4"
	want := [][]string{
		{"+", "3", "4"},
		{"3", "4", "+"},
		nil,
		{"*", "+", "2", "3", "4"},
	}
	parser := NewParser(strings.NewReader(input))
	var got [][]string
	for {
		tokens, err := parser.ParseLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, tokens)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf(diff)
	}
}

func TestParsePos(t *testing.T) {
	parser := NewParser(strings.NewReader("+ 3 4\n5"))
	if _, err := parser.ParseLine(); err != nil {
		t.Fatal(err)
	}
	if got := parser.Pos(); got != 6 {
		t.Errorf("want 6 but got %d", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		notation Notation
		want     string
	}{
		{
			input:    "+ 3 4",
			notation: NotationPrefix,
			want:     "(+ 3 4)",
		},
		{
			input:    "3 4 + 5 *",
			notation: NotationPostfix,
			want:     "(* (+ 3 4) 5)",
		},
		{
			input:    "- * 2 3 / 8 4\n",
			notation: NotationPrefix,
			want:     "(- (* 2 3) (/ 8 4))",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		tree, notation, err := NewParser(strings.NewReader(test.input)).Parse()
		if err != nil {
			t.Error(err)
			continue
		}
		if notation != test.notation {
			t.Errorf("want %v for %q but got %v", test.notation, test.input, notation)
		}
		if got := tree.String(); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize(" +  3\t4 ")
	if diff := cmp.Diff([]string{"+", "3", "4"}, got); diff != "" {
		t.Errorf(diff)
	}
}
