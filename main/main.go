package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/davecgh/go-spew/spew"

	"github.com/synapse-lang/synapse/lexer"
)

//****************************  Main  ********************************//
func main() {
	debug := flag.Bool("debug", false, "dump raw token structs")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "USAGE: ./synlex [-debug] <input-file>")
		os.Exit(1)
	}

	infile := flag.Arg(0)
	var lang *lexer.Language
	switch path.Ext(infile) {
	case ".syn":
		lang = lexer.Synapse
	case ".qnet":
		lang = lexer.QuantumNet
	default:
		fmt.Fprintln(os.Stderr, "Input file extension must be .syn or .qnet")
		os.Exit(1)
	}

	code, err := os.ReadFile(infile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open input file: %v\n", err)
		os.Exit(1)
	}

	tokens := lexer.Tokenize(lang, string(code))

	if *debug {
		spew.Fdump(os.Stdout, tokens)
		return
	}

	for _, tok := range tokens {
		switch tok.Type {
		case lexer.NUMBER:
			fmt.Printf("%d:%d\t%s\t%v\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Value)
		default:
			fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Text)
		}
	}
}
