// SPDX-License-Identifier: MPL-2.0

package main

import cmd "cabledoc/cmd/cabledoc"

func main() {
	cmd.Execute()
}
