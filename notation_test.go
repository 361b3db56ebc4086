package polish

import (
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		input string
		want  Notation
	}{
		{input: "+ 3 4", want: NotationPrefix},
		{input: "+ - 3", want: NotationPrefix},
		{input: "3 4 +", want: NotationPostfix},
		{input: "-3 4 +", want: NotationPostfix},
	}
	for _, test := range tests {
		got, err := Detect(Tokenize(test.input))
		if err != nil {
			t.Error(err)
			continue
		}
		if got != test.want {
			t.Errorf("want %v for %q but got %v", test.want, test.input, got)
		}
	}
}

func TestDetectUnsupported(t *testing.T) {
	inputs := []string{
		"+ 3 -",
		"3 4",
		"5",
		"+",
		"",
		"   ",
	}
	for _, input := range inputs {
		if _, err := Detect(Tokenize(input)); !errors.Is(err, ErrUnsupportedNotation) {
			t.Errorf("want ErrUnsupportedNotation for %q but got %v", input, err)
		}
	}
	if _, err := Detect(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("want ErrEmpty but got %v", err)
	}
}

func TestBuildUnsupported(t *testing.T) {
	tree, _, err := Build(Tokenize("+ 3 -"))
	if !errors.Is(err, ErrUnsupportedNotation) {
		t.Errorf("want ErrUnsupportedNotation but got %v", err)
	}
	if tree != nil {
		t.Errorf("want no tree but got %v", tree)
	}
}
