package main

import "go.minekube.com/chatmsg/pkg/cmd/chatmsg"

func main() {
	chatmsg.Execute()
}
