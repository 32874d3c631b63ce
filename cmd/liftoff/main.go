package main

import "github.com/dogeorg/liftoff/cmd/liftoff/cmd"

func main() {
	cmd.Execute()
}
