package main

import "github.com/theirongolddev/snowplan/cmd"

func main() {
	cmd.Execute()
}
