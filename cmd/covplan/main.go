package main

import "github.com/arl/covplan/cmd/covplan/cmd"

func main() {
	cmd.Execute()
}
