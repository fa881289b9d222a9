// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--watch] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	watching := len(options["watch"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	if err := bst.Initialise(masterConfiguration.Tree); nil != err {
		fault.Criticalf("bst initialise error: %s", err)
		exitwithstatus.Message("%s: tree setup failed with error: %s", program, err)
	}
	defer bst.Finalise()

	_, replayErr := replay(masterConfiguration, os.Stdout, log)
	report(program, verbose, replayErr)

	if !watching {
		if nil != replayErr {
			exitwithstatus.Exit(1)
		}
		return
	}

	channel := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), channel)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	if err := watch(program, configurationFile, verbose, channel, ch, log, replayErr); nil != err {
		exitwithstatus.Exit(1)
	}
}

// replay on every change until a signal arrives or the file is
// removed, returns the error of the most recent replay
func watch(program string, configurationFile string, verbose bool, channel watcherChannel, signals <-chan os.Signal, log *logger.L, lastErr error) error {
	for {
		select {
		case sig := <-signals:
			log.Infof("received signal: %v", sig)
			return lastErr

		case <-channel.remove:
			log.Warnf("configuration file removed: %s", configurationFile)
			fmt.Fprintf(os.Stderr, "%s: configuration file removed\n", program)
			return lastErr

		case <-channel.change:
			log.Infof("configuration changed: %s", configurationFile)
			lastErr = rerun(configurationFile, log)
			report(program, verbose, lastErr)
		}
	}
}

// reload the configuration and replay it with the new tree options
func rerun(configurationFile string, log *logger.L) error {
	config, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		log.Errorf("reload error: %s", err)
		return err
	}

	bst.Finalise()
	if err := bst.Initialise(config.Tree); nil != err {
		return err
	}

	_, err = replay(config, os.Stdout, log)
	return err
}

func report(program string, verbose bool, err error) {
	if nil != err {
		fmt.Fprintf(os.Stderr, "%s: %s\n", program, err)
		return
	}
	if verbose {
		created, detached := bst.Statistics()
		fmt.Fprintf(os.Stderr, "%s: ok  nodes created: %d  detached: %d\n", program, created, detached)
	}
}
