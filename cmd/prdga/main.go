// Command prdga searches for minimum-weight perfect Roman dominating
// functions on graphs read from edge-list files.
//
//	prdga run graph.txt --trials 5 --output json
//	prdga check graph.txt 0020110
//	prdga construct graph.txt --method degree
//	prdga generate grid --rows 5 --cols 5 -f grid5.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
