// Command brambledemo runs the sample form in a window or a terminal.
package main

func main() {
	Execute()
}
