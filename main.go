package main

import "github.com/catwell/ownlisp/cmd"

func main() {
	cmd.Execute()
}
