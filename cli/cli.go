// Package cli exposes the collections as the adt command line tool.
package cli

import (
	"io"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/adt/utils/collections"
)

type Globals struct {
	LogLevel string `help:"Diagnostics log level." default:"warn" enum:"debug,info,warn,error" env:"ADT_LOG_LEVEL"`
	NoColor  bool   `help:"Disable colored diagnostics." env:"ADT_NO_COLOR"`

	Out io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Set   SetCmd   `cmd:"" help:"Combine two sets with union, intersection, difference and subset."`
	Queue QueueCmd `cmd:"" help:"Enqueue elements and drain them in FIFO order."`
	List  ListCmd  `cmd:"" help:"Build a linked list, then insert, look up and remove elements."`
	Stack StackCmd `cmd:"" help:"Push elements and pop them in LIFO order."`
}

// New builds a parser for the adt command tree writing results to out.
func New(out io.Writer, options ...kong.Option) (*kong.Kong, *CLI, error) {
	c := &CLI{}
	c.Out = out
	options = append([]kong.Option{
		kong.Name("adt"),
		kong.Description("Textbook abstract data types: set, queue, linked list and stack."),
		kong.Writers(out, out),
	}, options...)
	parser, err := kong.New(c, options...)
	if err != nil {
		return nil, nil, err
	}
	return parser, c, nil
}

// Execute configures logging and runs the parsed command.
func (c *CLI) Execute(ctx *kong.Context) error {
	if err := c.Globals.setupLogging(); err != nil {
		return err
	}
	return ctx.Run(&c.Globals)
}

func (g *Globals) setupLogging() error {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableColors: g.NoColor,
	})
	collections.SetLogger(log.WithFields(log.Fields{"component": "collections"}))
	return nil
}
