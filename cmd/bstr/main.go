package main

import (
	"os"

	"github.com/msto63/bstr/cmd/bstr/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
