package main

import "github.com/shide1989/zsh-docs/cmd"

func main() {
	cmd.Execute()
}
