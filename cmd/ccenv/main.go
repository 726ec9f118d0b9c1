// Command ccenv locates the host C/C++ toolchain and prepares per-mode
// build environments.
package main

import "github.com/goplus/ccenv/cmd/ccenv/internal"

func main() {
	internal.Execute()
}
