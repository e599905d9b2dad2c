package main

import (
	"github.com/CNife/simple-utf8/cmd/utf8/cmd"
)

func main() {
	cmd.Execute()
}
