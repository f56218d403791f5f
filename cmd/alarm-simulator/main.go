package main

import "github.com/oshokin/alarm-record-store/cmd/alarm-simulator/cmd"

func main() {
	cmd.Execute()
}
