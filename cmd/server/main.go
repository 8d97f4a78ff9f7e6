package main

import "github.com/NikGojani/san-rise-sub001/internal/app/server"

func main() {
	server.Run()
}
