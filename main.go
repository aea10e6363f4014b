package main

import "wpcomics/cmd"

func main() {
	cmd.Execute()
}
