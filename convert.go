package polish

import "strings"

// Result holds every rendering of one expression and its value.
type Result struct {
	Input    string   `yaml:"input"`
	Notation Notation `yaml:"notation"`
	Prefix   string   `yaml:"prefix"`
	Postfix  string   `yaml:"postfix"`
	Infix    string   `yaml:"infix"`
	Value    int64    `yaml:"result"`
}

// Convert builds the tree for line, renders it in all three notations
// and evaluates it. When building fails the result is nil. Otherwise the
// result holds whatever succeeded before the first error.
func Convert(line string) (*Result, error) {
	return ConvertTokens(Tokenize(line))
}

// ConvertTokens is like Convert for an already tokenized expression.
func ConvertTokens(tokens []string) (*Result, error) {
	tree, notation, err := Build(tokens)
	if err != nil {
		return nil, err
	}
	r := &Result{
		Input:    strings.Join(tokens, " "),
		Notation: notation,
	}
	if r.Prefix, err = tree.Prefix(); err != nil {
		return r, err
	}
	if r.Postfix, err = tree.Postfix(); err != nil {
		return r, err
	}
	if r.Infix, err = tree.Infix(); err != nil {
		return r, err
	}
	if r.Value, err = tree.Eval(); err != nil {
		return r, err
	}
	return r, nil
}
