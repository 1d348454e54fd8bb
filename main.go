package main

import "github.com/they4kman/squaresweep/cmd"

func main() {
	cmd.Execute()
}
