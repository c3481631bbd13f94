// Command view-submat prints substitution matrices written by
// 'submat -gob'.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TuftsBCB/submat/cmd/util"
)

func init() {
	util.FlagParse("matrix-file [matrix-file ...]", "")
	util.AssertLeastNArg(1)
}

func main() {
	for i, path := range flag.Args() {
		if util.NArg() > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("# %s\n", path)
		}
		m := util.MatrixRead(path)
		util.Assert(m.WriteTable(os.Stdout), "Could not write matrix")
	}
}
