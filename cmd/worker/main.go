/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import "bitbucket.org/Amartha/go-fp-aggregation/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
