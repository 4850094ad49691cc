package main

import "github.com/mj1618/i3-rofi-mark/cmd"

func main() {
	cmd.Execute()
}
