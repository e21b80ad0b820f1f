package main

import (
	"growdash/internal/cmd"
)

func main() {
	cmd.Run()
}
