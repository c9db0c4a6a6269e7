package main

import "participant-registration/cmd/server"

func main() {
	server.Init()
	server.Run()
}
