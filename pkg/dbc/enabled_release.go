// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

//go:build release

package dbc

const enabled = false
