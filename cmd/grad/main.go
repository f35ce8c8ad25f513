// Package main provides the grad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/grad-ml/grad/engine"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("grad %s\n", version)
		return
	}

	fmt.Println("grad - scalar reverse-mode automatic differentiation")
	fmt.Printf("Version: %s\n\n", version)

	// Worked example: out = (a + b) * c
	a := engine.New(2.0)
	b := engine.New(3.0)
	c := engine.New(4.0)

	out := a.Add(b).Mul(c)
	out.Backward()

	fmt.Println("out = (a + b) * c with a=2, b=3, c=4")
	fmt.Printf("  out     = %g\n", out.Data())
	fmt.Printf("  dout/da = %g\n", a.Grad())
	fmt.Printf("  dout/db = %g\n", b.Grad())
	fmt.Printf("  dout/dc = %g\n", c.Grad())
}
