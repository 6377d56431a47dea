package main

import "palplanner/cmd/pal/root"

func main() {
	root.Execute()
}
