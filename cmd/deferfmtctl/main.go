// Command deferfmtctl is a peripheral tool over the decoder: it is not
// part of the core four-part pipeline and carries none of its invariants.
package main

func main() {
	execute()
}
