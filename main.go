package main

import "github.com/selfbiz/costplan/cmd"

func main() {
	cmd.Execute()
}
