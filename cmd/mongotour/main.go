package main

import "github.com/dbsmedya/mongotour/cmd/mongotour/cmd"

func main() {
	cmd.Execute()
}
