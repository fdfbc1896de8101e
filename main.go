// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/urikit/cmd/urikit"

func main() {
	cmd.Execute()
}
