package main

import "habithatch/cmd/hatch/root"

func main() {
	root.Execute()
}
