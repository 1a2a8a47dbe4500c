package main

import "tftp-router-flasher/cmd"

func main() {
	cmd.Execute()
}
