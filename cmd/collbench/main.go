// Collbench exercises the container library: it benchmarks the containers
// and can serve a monitored demo session.
package main

func main() {
	Execute()
}
