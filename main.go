package main

import "github.com/quarryworks/shelflife/cmd"

func main() {
	cmd.Execute()
}
