/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/hpckit/qsend/pkg/cli"

func main() {
	cli.Run()
}
