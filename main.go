package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/gearlang/gear/lib/lexer"
	"github.com/gearlang/gear/lib/parser"
)

func main() {
	app := &cli.App{
		Name:                   "gear",
		Usage:                  "Front-end for the Gear language",
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:  "ast",
				Usage: "Parse a Gear file and print its AST",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input-str",
						Aliases: []string{"s"},
						Usage:   "Parse a string instead of a file",
					},
				},
				Action: dumpAST,
			},
			{
				Name:  "lex",
				Usage: "Tokenize a Gear file and print the token stream",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input-str",
						Aliases: []string{"s"},
						Usage:   "Tokenize a string instead of a file",
					},
				},
				Action: dumpTokens,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func readSource(c *cli.Context) (string, error) {
	if s := c.String("input-str"); s != "" {
		return s, nil
	}
	if c.Args().Len() == 0 {
		return "", cli.Exit(color.RedString("No input file or string provided"), 1)
	}
	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return "", cli.Exit(color.RedString("Error reading file: %s", err), 1)
	}
	return string(data), nil
}

func dumpAST(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return err
	}
	p, err := parser.NewFromSource(src)
	if err != nil {
		return cli.Exit(color.RedString("Error tokenizing: %s", err), 1)
	}
	program, err := p.Parse()
	if err != nil {
		return cli.Exit(color.RedString("Error parsing: %s", err), 1)
	}
	return printJSON(program)
}

func dumpTokens(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return err
	}
	tokens, err := lexer.New(src).Tokenize()
	if err != nil {
		return cli.Exit(color.RedString("Error tokenizing: %s", err), 1)
	}
	return printJSON(tokens)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return cli.Exit(color.RedString("Error encoding output: %s", err), 1)
	}
	fmt.Println(string(out))
	return nil
}
