/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import "github.com/orien/lbtree/cmd"

func main() {
	cmd.Execute()
}
