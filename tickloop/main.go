// Command tickloop runs scenario files on a tick engine.
package main

import "github.com/sarchlab/tickloop/tickloop/cmd"

func main() {
	cmd.Execute()
}
