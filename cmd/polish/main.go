package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/mattn/polish"
	"gopkg.in/yaml.v3"
)

var (
	expr   = flag.String("e", "", "convert a single expression")
	format = flag.String("format", "text", "output format (text or yaml)")
	dump   = flag.Bool("dump", false, "dump each expression tree to stderr")
)

// record is the yaml form of one conversion.
type record struct {
	Input    string `yaml:"input"`
	Notation string `yaml:"notation,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Postfix  string `yaml:"postfix,omitempty"`
	Infix    string `yaml:"infix,omitempty"`
	Result   *int64 `yaml:"result,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

type printer struct {
	out    io.Writer
	format string
	dump   io.Writer
	enc    *yaml.Encoder
	count  int
	failed int
}

func newPrinter(out io.Writer, format string) *printer {
	p := &printer{
		out:    out,
		format: format,
	}
	if format == "yaml" {
		p.enc = yaml.NewEncoder(out)
	}
	return p
}

// run converts every non-empty line of r. A conversion failure is
// written to the output and counted; only I/O errors are returned.
func (p *printer) run(r io.Reader, prompt string) error {
	parser := polish.NewParser(r)
	for {
		if prompt != "" {
			fmt.Fprint(p.out, prompt)
		}
		tokens, err := parser.ParseLine()
		if err == io.EOF {
			if prompt != "" {
				fmt.Fprintln(p.out)
			}
			return nil
		}
		if err != nil {
			return err
		}
		if len(tokens) == 0 {
			continue
		}
		if err := p.convert(tokens); err != nil {
			return err
		}
	}
}

func (p *printer) convert(tokens []string) error {
	if p.dump != nil {
		if tree, _, err := polish.Build(tokens); err == nil {
			spew.Fdump(p.dump, tree)
		}
	}
	res, cerr := polish.ConvertTokens(tokens)
	if cerr != nil {
		p.failed++
	}

	var err error
	if p.enc != nil {
		err = p.writeYAML(tokens, res, cerr)
	} else {
		err = p.writeText(res, cerr)
	}
	p.count++
	return err
}

func (p *printer) writeText(res *polish.Result, cerr error) error {
	var buf bytes.Buffer
	if p.count > 0 {
		buf.WriteString("\n")
	}
	switch {
	case errors.Is(cerr, polish.ErrUnsupportedNotation):
		fmt.Fprintln(&buf, "That notation is not supported.")
	case res == nil:
		fmt.Fprintf(&buf, "Error: %v\n", cerr)
	default:
		// renders fail together, so an empty prefix means none succeeded
		if res.Prefix != "" {
			fmt.Fprintf(&buf, "As prefix:   %s\n", res.Prefix)
			fmt.Fprintf(&buf, "As postfix:  %s\n", res.Postfix)
			fmt.Fprintf(&buf, "As infix:    %s\n", res.Infix)
			buf.WriteString("\n")
		}
		if cerr != nil {
			fmt.Fprintf(&buf, "Error: %v\n", cerr)
		} else {
			fmt.Fprintf(&buf, "Result: %d\n", res.Value)
		}
	}
	_, err := p.out.Write(buf.Bytes())
	return err
}

func (p *printer) writeYAML(tokens []string, res *polish.Result, cerr error) error {
	rec := record{
		Input: strings.Join(tokens, " "),
	}
	if res != nil {
		rec.Notation = res.Notation.String()
		rec.Prefix = res.Prefix
		rec.Postfix = res.Postfix
		rec.Infix = res.Infix
	}
	if cerr != nil {
		rec.Error = cerr.Error()
	} else {
		v := res.Value
		rec.Result = &v
	}
	return p.enc.Encode(&rec)
}

func (p *printer) Close() error {
	if p.enc != nil {
		return p.enc.Close()
	}
	return nil
}

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *format != "text" && *format != "yaml" {
		log.Fatalf("unknown format: %q", *format)
	}

	p := newPrinter(os.Stdout, *format)
	if *dump {
		p.dump = os.Stderr
	}

	var err error
	switch {
	case *expr != "":
		err = p.run(strings.NewReader(*expr), "")
	case flag.NArg() == 1:
		var f *os.File
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		err = p.run(f, "")
	case isatty.IsTerminal(os.Stdin.Fd()):
		err = p.run(os.Stdin, "> ")
	default:
		err = p.run(os.Stdin, "")
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Close(); err != nil {
		log.Fatal(err)
	}
	if p.failed > 0 {
		os.Exit(1)
	}
}
