package main

import "github.com/wangdayong228/toggl-client/cmd"

func main() {
	cmd.Execute()
}
