// cardboard-md turns markdown checklists into task boards.
package main

import "github.com/antopolskiy/cardboard-md/cmd"

func main() {
	cmd.Execute()
}
