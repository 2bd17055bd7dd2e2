package main

import "github.com/tipcredit/fica-tip-credit/cmd"

func main() {
	cmd.Execute()
}
