// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlstep/gate"
	"github.com/bitmark-inc/avlstep/messagebus"
	"github.com/bitmark-inc/avlstep/util"
)

const (
	watcherLoggerPrefix = "watcher"
	watcherName         = "watcher"
)

// pacingChanged - queued after a successful reload
type pacingChanged struct {
	mode gate.Mode
	rate float64
}

// pacingFailed - queued when the changed file cannot be used
type pacingFailed struct {
	err error
}

// watch the configuration file and re-apply the pacing settings
//
// the directory is watched rather than the file so that editors
// that replace the file are seen
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	stepper  *gate.Stepper
	queue    *messagebus.Queue
}

func newFileWatcher(targetFile string, log *logger.L, stepper *gate.Stepper, queue *messagebus.Queue) (*fileWatcher, error) {
	filePath, err := util.AbsoluteFile(targetFile)
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.FileExists(filePath) {
		return nil, errors.New("file does not exist")
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		log.Errorf("watcher add error: %s, abort", err)
		watcher.Close()
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		stepper:  stepper,
		queue:    queue,
	}, nil
}

// Run - background process loop
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Info("starting…")
	defer w.watcher.Close()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watch error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			log.Debugf("file event: %v", event)
			if watcherEventFileChange(event) {
				w.reload()
			}
		}
	}
	log.Info("stopped")
}

func (w *fileWatcher) reload() {
	mode, rate, err := getPacing(w.filePath)
	if nil != err {
		w.log.Warnf("reload: %s error: %s", w.filePath, err)
		w.queue.Send(watcherName, pacingFailed{err: err})
		return
	}
	if err := w.stepper.SetRate(rate); nil != err {
		w.log.Warnf("reload: rate: %g error: %s", rate, err)
		w.queue.Send(watcherName, pacingFailed{err: err})
		return
	}
	w.stepper.SetMode(mode)
	w.log.Infof("reload: mode: %s  rate: %g", mode, rate)
	w.queue.Send(watcherName, pacingChanged{mode: mode, rate: rate})
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
