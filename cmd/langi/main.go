// Command langi runs the indentation-based scripting language described
// by this repository's interpreter packages: it lexes, parses, and
// evaluates a source file, writing the program's Print output to
// stdout.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/dkellis-exercise/langi/interp"
	"github.com/dkellis-exercise/langi/lexer"
	"github.com/dkellis-exercise/langi/parser"
)

func main() {
	var (
		file       = pflag.String("file", "", "source file to run (required)")
		dumpTokens = pflag.Bool("dump-tokens", false, "print the lexer's token stream instead of running the program")
		dumpAst    = pflag.Bool("dump-ast", false, "print the parsed top-level statement list instead of running the program")
		configPath = pflag.String("config", "", "optional YAML run-config file")
	)
	pflag.Parse()

	if *file == "" {
		log.Fatal("langi: --file is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("langi: loading config: %v", err)
	}

	src, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("langi: reading %s: %v", *file, err)
	}

	lex, err := lexer.New(string(src))
	if err != nil {
		log.Fatalf("langi: %v", err)
	}

	if *dumpTokens {
		dumpTokenStream(lex, cfg.IndentWidth)
		return
	}

	p := parser.New(lex)
	module, err := p.ParseModule()
	if err != nil {
		log.Fatalf("langi: %v", err)
	}

	if *dumpAst {
		fmt.Printf("%#v\n", module)
		return
	}

	scope := interp.NewScope()
	ctx := interp.NewContext(os.Stdout)
	if _, err := module.Execute(scope, ctx); err != nil {
		if _, isReturn := interp.AsReturn(err); isReturn {
			if cfg.WarningsFatal {
				log.Fatal("langi: return statement outside of any method body")
			}
			return
		}
		log.Fatalf("langi: %v", err)
	}
}

func dumpTokenStream(lex *lexer.Lexer, indentWidth int) {
	fmt.Printf("# indent width: %d spaces per level\n", indentWidth)
	for {
		t := lex.CurrentToken()
		fmt.Printf("%-12s %q (line %d, col %d)\n", t.Kind, t.Lexeme, t.Row, t.Col)
		if t.Kind == lexer.Eof {
			return
		}
		lex.NextToken()
	}
}
