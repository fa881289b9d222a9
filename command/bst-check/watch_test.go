// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
)

const (
	goodScript = "return { keys = { 4, 2, 6 }, delete = { 4 } }\n"
	badScript  = "return { keys = { 4, 2, 6 }, delete = { 5 } }\n"
)

// unbuffered channels so each event is handled before the next is sent
func startWatch(t *testing.T, fileName string, initial error) (watcherChannel, chan os.Signal, <-chan error) {
	channel := watcherChannel{
		change: make(chan struct{}),
		remove: make(chan struct{}),
	}
	signals := make(chan os.Signal)
	result := make(chan error, 1)

	go func() {
		result <- watch("bst-check", fileName, false, channel, signals, logger.New("test"), initial)
	}()
	return channel, signals, result
}

func waitResult(t *testing.T, result <-chan error) error {
	select {
	case err := <-result:
		return err
	case <-time.After(watchTimeout):
		t.Fatalf("watch loop did not return")
	}
	return nil
}

func writeScript(t *testing.T, fileName string, contents string) {
	err := ioutil.WriteFile(fileName, []byte(contents), 0600)
	require.NoError(t, err, "write configuration")
}

func TestWatchKeepsLastError(t *testing.T) {
	dir, err := ioutil.TempDir("", "bst-check-watch")
	require.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "tree.conf")
	writeScript(t, fileName, badScript)

	channel, signals, result := startWatch(t, fileName, nil)
	channel.change <- struct{}{}
	signals <- syscall.SIGTERM

	err = waitResult(t, result)
	assert.True(t, fault.IsErrProcess(err), "failed replay not reported: %v", err)
}

func TestWatchClearsErrorAfterFix(t *testing.T) {
	dir, err := ioutil.TempDir("", "bst-check-watch")
	require.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "tree.conf")
	writeScript(t, fileName, goodScript)

	channel, _, result := startWatch(t, fileName, fault.ErrCheckFailed)
	channel.change <- struct{}{}
	channel.remove <- struct{}{}

	assert.NoError(t, waitResult(t, result), "fixed script still failing")
}

func TestWatchInitialErrorWithoutChange(t *testing.T) {
	_, signals, result := startWatch(t, "unused.conf", fault.ErrCheckFailed)
	signals <- syscall.SIGINT

	assert.Equal(t, fault.ErrCheckFailed, waitResult(t, result), "initial error lost")
}
