package main

import "github.com/zxsa0716/ecoproject/cmd/lq/root"

func main() {
	root.Execute()
}
