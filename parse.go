package polish

import (
	"bufio"
	"bytes"
	"io"
	"unicode"
)

// Parser reads space separated expressions from a reader, one per line.
type Parser struct {
	buf *bufio.Reader
	pos int
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf: bufio.NewReader(r),
	}
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) readRune() (rune, error) {
	r, _, err := p.buf.ReadRune()
	if err == nil {
		p.pos++
	}
	return r, err
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	if err == nil {
		p.pos--
	}
	return err
}

func isWhite(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// SkipWhite skips whitespace up to, but not including, a newline.
func (p *Parser) SkipWhite() {
	for {
		r, err := p.readRune()
		if err != nil {
			return
		}
		if !isWhite(r) {
			p.unreadRune()
			return
		}
	}
}

// ParseToken reads runes up to the next whitespace.
func (p *Parser) ParseToken() (string, error) {
	var buf bytes.Buffer
	for {
		r, err := p.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}

// ParseLine returns the tokens of the next line. An empty line yields no
// tokens; io.EOF is returned once the input is exhausted.
func (p *Parser) ParseLine() ([]string, error) {
	var tokens []string
	for {
		p.SkipWhite()
		r, err := p.readRune()
		if err != nil {
			if err == io.EOF && len(tokens) > 0 {
				return tokens, nil
			}
			return nil, err
		}
		if r == '\n' {
			return tokens, nil
		}
		p.unreadRune()
		tok, err := p.ParseToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// Parse reads the next line and builds its tree.
func (p *Parser) Parse() (*Tree, Notation, error) {
	tokens, err := p.ParseLine()
	if err != nil {
		return nil, 0, err
	}
	return Build(tokens)
}
