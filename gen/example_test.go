package gen_test

import (
	"fmt"

	"github.com/katalvlaran/randgen/gen"
)

// ExampleResolve shows a combinator resolving nested generators on each
// invocation.
func ExampleResolve() {
	g := gen.New(gen.WithSeed(1))

	ones := g.Array(3, g.Number(1, 1))
	fmt.Println(gen.Resolve(ones))
	// Output: [1 1 1]
}

// ExampleGen_Sequence cycles a fixed data set round-robin.
func ExampleGen_Sequence() {
	g := gen.New(gen.WithSeed(1))

	seq := g.Sequence([]string{"a", "b", "c"})
	for i := 0; i < 4; i++ {
		fmt.Println(seq())
	}
	// Output:
	// a
	// b
	// c
	// a
}

// ExampleGen_Join assembles a string from literals and generators.
func ExampleGen_Join() {
	g := gen.New(gen.WithSeed(1))

	title := g.Join("item-", g.Number(7, 7), gen.Constant("!"))
	fmt.Println(gen.Resolve(title))
	// Output: item-7!
}

// ExampleConstant passes a function through the algebra untouched.
func ExampleConstant() {
	greet := func() string { return "hello" }

	resolved := gen.Resolve(gen.Constant(greet))
	fn := resolved.(func() string)
	fmt.Println(fn())
	// Output: hello
}
