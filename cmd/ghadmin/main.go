package main

import "ghadmin/internal/cmd"

func main() {
	cmd.Execute()
}
