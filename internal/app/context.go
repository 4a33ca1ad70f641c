// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the application context shared by the railsui
// collaborators: the settings record currently in effect.
//
// A single *Context is created at startup from the persisted settings and
// passed explicitly to the service, the settings watcher and the CLI. The
// active record is replaced wholesale on every save or reload; readers never
// observe a partially updated record.
package app

import (
	"sync/atomic"

	"github.com/welloca/railsui/models"
)

// Context carries the active settings record.
type Context struct {
	settings atomic.Pointer[models.Settings]
}

// NewContext returns a Context whose active record is initial. A nil
// initial record is replaced by defaults.
func NewContext(initial *models.Settings) *Context {
	c := &Context{}
	c.Swap(initial)
	return c
}

// Current returns the active record. Callers must treat it as read-only and
// go through Swap to change it.
func (c *Context) Current() *models.Settings {
	return c.settings.Load()
}

// Swap installs next as the active record and returns the previous one.
// Concurrent swaps are resolved last writer wins.
func (c *Context) Swap(next *models.Settings) *models.Settings {
	if next == nil {
		next = models.DefaultSettings()
	}
	return c.settings.Swap(next)
}
