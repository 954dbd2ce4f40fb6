package main

import (
	"fmt"
	"sort"

	compressing "github.com/go-git/go-compressing"
	"github.com/go-git/go-compressing/config"
)

type CmdInspect struct {
	cmd

	Codes bool `long:"codes" description:"List the code of every symbol."`

	Args struct {
		Input string `positional-arg-name:"input" required:"true"`
	} `positional-args:"yes"`
}

func (CmdInspect) Usage() string {
	return fmt.Sprintf("usage: %s inspect <input>", bin)
}

func (c *CmdInspect) Execute(args []string) error {
	if _, err := c.config(&config.Config{}); err != nil {
		return err
	}

	input, err := c.path(c.Args.Input)
	if err != nil {
		return err
	}

	a, err := compressing.AnalyzeFile(ctx, c.filesystem(), input)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "size:    %d bytes\n", a.Size)
	fmt.Fprintf(stdout, "symbols: %d\n", a.Symbols)
	fmt.Fprintf(stdout, "huffman: %d bytes, saved %.2f%%\n", a.EncodedSize(), a.SpaceSaved())

	if !c.Codes || a.Table == nil {
		return nil
	}

	symbols := make([]int, 0, a.Symbols)
	for s, n := range a.Frequencies {
		if n > 0 {
			symbols = append(symbols, s)
		}
	}

	// most frequent first
	sort.SliceStable(symbols, func(i, j int) bool {
		return a.Frequencies[symbols[i]] > a.Frequencies[symbols[j]]
	})

	for _, s := range symbols {
		fmt.Fprintf(stdout, "0x%02x %10d %s\n", s, a.Frequencies[s], a.Table[s])
	}

	return nil
}
