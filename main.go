package main

import "github.com/theirongolddev/deficit/cmd"

func main() {
	cmd.Execute()
}
