// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command globe shows the vertices of a dodecahedron as latitude and
// longitude on a translucent world globe.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/globe/globe"
)

func main() {
	opts := cli.DefaultOptions("globe", "Globe shows the vertices of a dodecahedron as latitude and longitude on a translucent world globe.")
	opts.DefaultFiles = []string{"globe.toml"}
	cli.Run(opts, &globe.Config{},
		&cli.Cmd[*globe.Config]{
			Func: globe.Run,
			Name: "run",
			Doc:  "run opens the interactive globe viewer.",
			Root: true,
		},
		&cli.Cmd[*globe.Config]{
			Func: globe.Report,
			Name: "report",
			Doc:  "report prints the projected vertex coordinates for the configured pose and exits.",
		},
	)
}
