package chain_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/chain"
)

func ExampleChain() {
	out := chain.Of(1, 2, 3, 4, 5, 6).
		Intersection([]int{2, 3, 5, 6, 7}).
		DropRight().
		Value()
	fmt.Println(out)
	// Output: [2 3 5]
}

func ExampleRound() {
	fmt.Println(chain.Round(chain.Of(1.005, 4.006), 2).Value())
	// Output: [1 4.01]
}

func ExampleRegisterMixin() {
	defer chain.FlushMixins()

	chain.RegisterMixin("evens", func(c any, _ ...any) any {
		return c.(*chain.Chain[int]).Filter(func(n, _ int) bool { return n%2 == 0 })
	})
	res, _ := chain.Of(1, 2, 3, 4).Mixin("evens")
	fmt.Println(res)
	// Output: Chain[2 4]
}

func ExampleChain_ToJSON() {
	b, _ := chain.Of("a", "b").Difference([]string{"b"}).ToJSON()
	fmt.Println(string(b))
	// Output: ["a"]
}
