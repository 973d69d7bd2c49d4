package main

import "github.com/notargets/gravflux/cmd"

func main() {
	cmd.Execute()
}
