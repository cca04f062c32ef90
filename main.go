package main

import "github.com/bookwise/bookwise_backend/cmd"

func main() {
	cmd.Execute()
}
