package main

import (
	cmd "github.com/kerbaras/mangatracker/cmd/mangas"
)

func main() {
	cmd.Execute()
}
