package main

import (
	"github.com/cottand/annot/cmd"
	"os"
)

func main() {
	err := cmd.NewRootCmd().Execute()
	if err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
