package main

import "github.com/positroncascade/lid-driven-cavity-problem/cmd"

func main() {
	cmd.Execute()
}
