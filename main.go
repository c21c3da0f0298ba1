package main

import "github.com/SrGrandi/analise-item/cmd"

func main() {
	cmd.Execute()
}
