package main

import "github.com/yech1990/chromwin/cmd"

func main() {
	cmd.Execute()
}
