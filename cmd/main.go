package main

import (
	cmd "github.com/simpletv/luasync/cmd/luasync"
)

func main() {
	cmd.Execute()
}
