package main

import "github.com/platecad/platecad/cmd/platecad/cmd"

func main() {
	cmd.Execute()
}
