// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the railsui command line.
//
// It wires the runtime configuration, the settings store, the host adapter,
// the installer service and the settings watcher into one process lifecycle,
// and exposes them as cobra commands: show, set, install, template copy,
// watch and version.
package cli
