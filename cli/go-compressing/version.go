package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var version = "master"

type CmdVersion struct{}

func (c *CmdVersion) Execute(args []string) error {
	fmt.Fprintf(stdout, "%s (%s) - build with %s\n", bin, buildVersion(), runtime.Version())
	return nil
}

func buildVersion() string {
	if version != "master" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return version
}
