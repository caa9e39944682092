package main

import "github.com/five82/lcat/internal/cmd"

func main() {
	cmd.Execute()
}
