package main

import (
	"fmt"

	compressing "github.com/go-git/go-compressing"
	"github.com/go-git/go-compressing/config"
)

type transformFileFunc = func(c *cmd, input, output string, o *compressing.FileOptions) (*compressing.Stats, error)

// transformCmd is the part shared by compress and decompress.
type transformCmd struct {
	cmd

	Output   string `short:"o" long:"output" description:"Output file." required:"true" value-name:"FILE"`
	Truncate bool   `long:"truncate" description:"Truncate the output file if it exists."`
	Verify   bool   `long:"verify" description:"Check the output gives back the input."`

	Args struct {
		Input string `positional-arg-name:"input" required:"true"`
	} `positional-args:"yes"`
}

func (c *transformCmd) run(fn transformFileFunc, savings bool) error {
	o := &config.Config{}
	o.Core.Truncate = c.Truncate
	o.Core.Verify = c.Verify

	o, err := c.config(o)
	if err != nil {
		return err
	}

	a, err := c.algorithm(o)
	if err != nil {
		return err
	}

	input, err := c.path(c.Args.Input)
	if err != nil {
		return err
	}

	output, err := c.path(c.Output)
	if err != nil {
		return err
	}

	stats, err := fn(&c.cmd, input, output, &compressing.FileOptions{
		Algorithm: a,
		Truncate:  o.Core.Truncate,
		Verify:    o.Core.Verify,
	})
	if err != nil {
		return err
	}

	if o.Core.Stats {
		fmt.Fprintln(stdout, "done.")
		fmt.Fprintf(stdout, "    in %d ms\n", stats.Elapsed.Milliseconds())
		if savings {
			fmt.Fprintf(stdout, "    saved %.2f%%\n", stats.SpaceSaved())
		}
	}

	return nil
}

type CmdCompress struct {
	transformCmd
}

func (CmdCompress) Usage() string {
	return fmt.Sprintf("usage: %s compress <input> -o <output>", bin)
}

func (c *CmdCompress) Execute(args []string) error {
	return c.run(func(c *cmd, input, output string, o *compressing.FileOptions) (*compressing.Stats, error) {
		return compressing.CompressFile(ctx, c.filesystem(), input, output, o)
	}, true)
}

type CmdDecompress struct {
	transformCmd
}

func (CmdDecompress) Usage() string {
	return fmt.Sprintf("usage: %s decompress <input> -o <output>", bin)
}

func (c *CmdDecompress) Execute(args []string) error {
	return c.run(func(c *cmd, input, output string, o *compressing.FileOptions) (*compressing.Stats, error) {
		return compressing.DecompressFile(ctx, c.filesystem(), input, output, o)
	}, false)
}
