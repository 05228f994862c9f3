package main

import "github.com/mselser95/polymarket-pnl/cmd"

func main() {
	cmd.Execute()
}
