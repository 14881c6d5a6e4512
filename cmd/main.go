package main

import (
	cmd "github.com/kerbaras/faceswap/cmd/faceswap"
)

func main() {
	cmd.Execute()
}
