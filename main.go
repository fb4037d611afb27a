package main

import "github.com/alexiusacademia/gocs25/cmd"

func main() {
	cmd.Execute()
}
