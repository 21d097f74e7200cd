package main

import "github.com/user/match-moments-cli/cmd"

func main() {
	cmd.Execute()
}
