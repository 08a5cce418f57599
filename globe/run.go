// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"io"
	"os"

	"cogentcore.org/core/core"
)

// Run opens the interactive globe window and blocks until it is closed.
func Run(cfg *Config) error {
	b := core.NewBody("globe").SetTitle("Globe")
	v := NewViewer(cfg)
	v.Build(b)
	b.RunMainWindow()
	return nil
}

// Report prints the vertex coordinates for the configured pose
// without opening a window.
func Report(cfg *Config) error {
	var w io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return NewViewer(cfg).WriteSnapshot(w, cfg.Format)
}
