// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
)

type metadata struct {
	config  *configuration.Configuration
	tree    *bst.Tree
	logging bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "bstree"
	app.Usage = "build a binary search tree and query it"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` supplying tree options and initial keys",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " comma separated `KEYS` inserted after any configured keys",
		},
	}
	app.Commands = commandList()

	// build the tree before any command runs
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			tree:    bst.NewTree(),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// without a configuration nothing is logged and the tree
		// package stays uninitialised
		if file := c.GlobalString("config"); "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			config, err := configuration.GetConfiguration(file)
			if nil != err {
				return err
			}
			m.config = config

			if err := logger.Initialise(config.Logging); nil != err {
				return err
			}
			m.logging = true

			if err := fault.Initialise(); nil != err {
				return err
			}

			if err := bst.Initialise(config.Tree); nil != err {
				return err
			}
		}

		keys := []bst.Key{}
		if nil != m.config {
			configured, err := m.config.InsertKeys()
			if nil != err {
				return err
			}
			keys = append(keys, configured...)
		}
		extra, err := parseKeyList(c.GlobalString("keys"))
		if nil != err {
			return err
		}
		keys = append(keys, extra...)

		for _, k := range keys {
			if _, err := m.tree.Insert(k); nil != err {
				return err
			}
		}
		if verbose {
			fmt.Fprintf(e, "inserted: %d keys\n", len(keys))
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.verbose {
			created, detached := bst.Statistics()
			fmt.Fprintf(m.e, "nodes created: %d  detached: %d\n", created, detached)
		}
		if m.logging {
			bst.Finalise()
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// output discarded unless verbose
func verboseWriter(m *metadata) io.Writer {
	if m.verbose {
		return m.e
	}
	return ioutil.Discard
}

// subcommands and their actions
func commandList() []cli.Command {
	return []cli.Command{
		{
			Name:   "print",
			Usage:  "draw the tree",
			Action: runPrint,
		},
		{
			Name:   "outline",
			Usage:  "show the tree as an indented outline",
			Action: runOutline,
		},
		{
			Name:   "keys",
			Usage:  "list keys in ascending order",
			Action: runKeys,
		},
		{
			Name:      "search",
			Usage:     "find the node holding a key",
			ArgsUsage: "KEY",
			Action:    runSearch,
		},
		{
			Name:      "successor",
			Usage:     "next node in order after a key",
			ArgsUsage: "KEY",
			Action:    runSuccessor,
		},
		{
			Name:      "predecessor",
			Usage:     "previous node in order before a key",
			ArgsUsage: "KEY",
			Action:    runPredecessor,
		},
		{
			Name:   "minimum",
			Usage:  "node with the lowest key",
			Action: runMinimum,
		},
		{
			Name:   "maximum",
			Usage:  "node with the highest key",
			Action: runMaximum,
		},
		{
			Name:      "delete",
			Usage:     "delete keys in the order given then draw the tree",
			ArgsUsage: "KEY...",
			Action:    runDelete,
		},
		{
			Name:   "check",
			Usage:  "verify back-references, ordering and node count",
			Action: runCheck,
		},
	}
}
