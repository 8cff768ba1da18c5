package main

import "github.com/NAGOHUSA/MCQUESTS/cmd/mcq/root"

func main() {
	root.Execute()
}
