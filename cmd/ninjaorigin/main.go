package main

import "github.com/Ch1mpleo/ninjaorigin-go/internal/cli"

func main() {
	cli.Execute()
}
