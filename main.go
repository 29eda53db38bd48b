package main

import "conlog/cmd/conlog"

func main() {
	conlog.Execute()
}
