package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/tuannh982/adt/cli"
)

func main() {
	parser, c, err := cli.New(os.Stdout, kong.UsageOnError())
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	parser.FatalIfErrorf(c.Execute(ctx))
}
