package main

import "deposit-desk/cmd"

func main() {
	cmd.Execute()
}
