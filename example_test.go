package reconciler

import (
	"fmt"
)

func ExampleState() {
	render := func(prior *Slots) *Slots {
		c := BeginPass(prior, nil)
		count, setCount, c := State(0, c)
		fmt.Println("count:", count)

		c = Effect(OnMount, func() {
			setCount(1)
		}, c)

		return EndPass(c)
	}

	slots := render(EmptySlots())
	ExecuteEffects(Mount, slots)

	slots, changed := Flush(slots)
	fmt.Println("changed:", changed)

	render(slots)

	// Output:
	// count: 0
	// changed: true
	// count: 1
}

func ExampleRunPass() {
	slots := RunPass(EmptySlots(), nil, func() {
		greeting, setGreeting := UseState("hello")
		fmt.Println(greeting)

		setGreeting("goodbye")
	})

	slots, _ = Flush(slots)

	RunPass(slots, nil, func() {
		greeting, _ := UseState("hello")
		fmt.Println(greeting)
	})

	// Output:
	// hello
	// goodbye
}

func ExampleReducer() {
	type action int

	render := func(prior *Slots) (*Slots, func(action)) {
		c := BeginPass(prior, nil)
		total, dispatch, c := Reducer(3, func(total int, a action) int {
			return total + int(a)
		}, c)
		fmt.Println("total:", total)

		return EndPass(c), dispatch
	}

	slots, dispatch := render(EmptySlots())

	dispatch(1)
	dispatch(2)

	slots, _ = Flush(slots)
	render(slots)

	// Output:
	// total: 3
	// total: 6
}
