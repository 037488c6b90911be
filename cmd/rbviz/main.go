/*
Command rbviz applies a script of insertions and removals to a red-black
tree of integer keys and prints the resulting tree.

	rbviz [flags] OPS...

Every operation is a key, prefixed with '+' for insertion or '-' for
removal; a key without prefix is inserted. As a leading '-' looks like a
command line flag, separate removals from the flags with "--":

	rbviz --events -- 10 20 30 -20

Operations may as well be read from a file with --script, separated by
white space. Removing a key which is not in the tree is not an error.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
