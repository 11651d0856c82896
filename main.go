/*
Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/
package main

import "github.com/nanaki-93/lsr/cmd"

func main() {
	cmd.Execute()
}
