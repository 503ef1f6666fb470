// Command freezedemo is a Drift app with a single screen that shows how
// freezing a subtree pins its output while its state keeps changing.
package main

import "github.com/go-drift/drift/pkg/engine"

func main() {
	engine.SetApp(App())
}
