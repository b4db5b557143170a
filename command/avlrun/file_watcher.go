// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

// FileWatcher - sends events when the watched file changes
type FileWatcher interface {
	Start() error
	Stop() error
}

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcherData - fsnotify based watcher for one file
type FileWatcherData struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

// WatcherChannel - event destinations, each should be buffered
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrConfigurationFileAbsent
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcherData{
		log:      log,
		watcher:  watcher,
		channel:  channel,
		filePath: filePath,
	}, nil
}

// Start - begin watching, events are delivered from a go routine
//
// the directory is watched rather than the file so that editors which
// replace the file by renaming are seen as a change
func (w *FileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.filePath {
					continue
				}
				w.log.Debugf("file event: %v", event)

				if watcherEventFileRemove(event) {
					if _, err := os.Stat(w.filePath); nil == err {
						// replaced by rename
						w.sendEvent(w.channel.change, "change")
						continue
					}
					w.log.Warnf("file %s removed", w.filePath)
					w.sendEvent(w.channel.remove, "remove")
					continue
				}

				if watcherEventFileChange(event) {
					w.log.Info("sending file change event…")
					w.sendEvent(w.channel.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Stop - release the watcher, no more events are sent
func (w *FileWatcherData) Stop() error {
	return w.watcher.Close()
}

func (w *FileWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// never blocks, a pending event already covers this one
func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
