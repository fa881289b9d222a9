// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/counter"
	"github.com/bitmark-inc/bstree/fault"
)

// LogTag - logger channel name used by this package
const LogTag = "bst"

// Configuration - options read from the "tree" section of a
// configuration file
type Configuration struct {
	// abort on any invariant violation instead of returning an error
	Strict bool `gluamapper:"strict" json:"strict"`
}

// package globals
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	strict      bool
	initialised bool

	created  counter.Counter // nodes allocated
	detached counter.Counter // nodes removed from a tree
}

var globalData globalDataType

// Initialise - open the logging channel and apply the configuration
//
// the logger package must already be initialised; without a call to
// Initialise the package does not log and never aborts
func Initialise(configuration Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New(LogTag)
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.strict = configuration.Strict
	globalData.initialised = true

	globalData.log.Infof("starting… strict: %t", globalData.strict)
	return nil
}

// Finalise - flush the log and return to the uninitialised state
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.log = nil
	globalData.strict = false
	globalData.initialised = false
	return nil
}

// Statistics - total nodes ever allocated and total nodes detached
// by deletion
func Statistics() (created uint64, detached uint64) {
	return globalData.created.Uint64(), globalData.detached.Uint64()
}

// record an invariant violation: always logged, fatal in strict mode
func violation(err error, format string, arguments ...interface{}) error {
	e := fmt.Errorf("%w: "+format, append([]interface{}{err}, arguments...)...)

	globalData.RLock()
	log := globalData.log
	strict := globalData.strict
	globalData.RUnlock()

	if nil != log {
		log.Criticalf("invariant violation: %s", e)
	}
	if strict {
		fault.Panicf("invariant violation: %s", e)
	}
	return e
}

func debugf(format string, arguments ...interface{}) {
	globalData.RLock()
	log := globalData.log
	globalData.RUnlock()

	if nil != log {
		log.Debugf(format, arguments...)
	}
}
