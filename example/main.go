// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package main

import "github.com/CeresDB/dbc/example/cmd"

func main() {
	cmd.Execute()
}
