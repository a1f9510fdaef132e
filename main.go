// SPDX-License-Identifier: MPL-2.0

// Corekit is a command-line toolkit for inspecting filesystem locations,
// checking refined numeric brands, and managing its own configuration.
package main

import cmd "corekit/cmd/corekit"

func main() {
	cmd.Execute()
}
