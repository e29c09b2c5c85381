// Command schem inspects, renders and edits schematic scene files.
package main

import "github.com/gogpu/schem/cmd/schem/cmd"

func main() {
	cmd.Execute()
}
