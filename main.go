package main

import "github.com/meysamhadeli/cmtscan/cmd"

func main() {
	cmd.Execute()
}
