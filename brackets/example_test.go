package brackets_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkata/brackets"
)

func ExampleIsValid() {
	for _, s := range []string{"()", "()[]{}", "(]", "([)]", "{[]}", ""} {
		fmt.Printf("%q -> %v\n", s, brackets.IsValid(s))
	}
	// Output:
	// "()" -> true
	// "()[]{}" -> true
	// "(]" -> false
	// "([)]" -> false
	// "{[]}" -> true
	// "" -> true
}

// ExampleCheck shows the diagnosis of an interleaved sequence.
func ExampleCheck() {
	fmt.Println(brackets.Check("([)]"))
	// Output: brackets: closing bracket does not match opener: got ')' at offset 2, want ']'
}

func ExampleGenerate() {
	seqs, _ := brackets.Generate(2)
	fmt.Println(seqs)
	// Output: [(()) ()()]
}
