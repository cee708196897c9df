package main

import "merchdash/internal/cmd"

func main() {
	cmd.Execute()
}
