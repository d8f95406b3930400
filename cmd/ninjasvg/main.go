package main

import "github.com/aalvaropc/ninjasvg/internal/cli"

func main() {
	cli.Execute()
}
