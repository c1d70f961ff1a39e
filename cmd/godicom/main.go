package main

import "godicom/cmd/godicom/cmd"

func main() {
	cmd.Execute()
}
