// Command showcase demonstrates the Beam property and binding API:
// properties with listeners, bound properties, read-only views, numeric
// mutators, and a chained binding graph.
package main

import (
	"fmt"

	"github.com/go-beam/beam/pkg/errors"
	"github.com/go-beam/beam/pkg/property"
)

func main() {
	defer errors.Recover("showcase.main")

	listeners()
	binding()
	boundProperty()
	readOnlyView()
	chainedGraph()
}

// listeners shows basic mutation and change notification.
func listeners() {
	fmt.Println("-- listeners --")
	name := property.NewProperty("anonymous")
	reg := name.AddListener(func(_ property.ObservableValue[string], oldValue, newValue string) {
		fmt.Printf("name changed: %q -> %q\n", oldValue, newValue)
	})

	name.Set("alice")
	name.Set("alice") // equal value, fires nothing
	name.RemoveListener(reg)
	name.Set("bob") // no listener left
	fmt.Println("final:", name.Get())
}

// binding shows a derived value over two numeric sources.
func binding() {
	fmt.Println("-- binding --")
	price := property.NewNumberProperty(19.99)
	quantity := property.NewNumberProperty(2)

	total := property.NewBinding(func() float64 {
		return price.Get() * quantity.Get()
	}, price, quantity)

	fmt.Printf("total: %.2f\n", total.Get())
	quantity.Increment()
	fmt.Printf("total after increment: %.2f\n", total.Get())
}

// boundProperty shows mirror binding and the bound-state guard.
func boundProperty() {
	fmt.Println("-- bound property --")
	source := property.NewNumberProperty(1)
	mirror := property.NewNumberProperty(0)

	mirror.Bind(source)
	source.Set(3.5)
	fmt.Println("mirror:", mirror.Get())

	if err := errors.Catch(func() { mirror.Set(0) }); err != nil {
		fmt.Println("rejected:", err)
	}

	mirror.Unbind()
	mirror.Set(7)
	fmt.Println("mirror after unbind:", mirror.Get())
}

// readOnlyView shows handing out an immutable projection of a property.
func readOnlyView() {
	fmt.Println("-- read-only view --")
	counter := property.NewReadOnlyWrapper(0)
	view := counter.ReadOnly()

	view.AddListener(func(_ property.ObservableValue[int], _, newValue int) {
		fmt.Println("view saw:", newValue)
	})
	counter.Set(41)
	counter.Set(42)
	fmt.Println("view value:", view.Get())
}

// chainedGraph shows depth-first propagation through dependent bindings.
func chainedGraph() {
	fmt.Println("-- chained graph --")
	celsius := property.NewNumberProperty(0)
	fahrenheit := property.NewBinding(func() float64 {
		return celsius.Get()*9/5 + 32
	}, celsius)
	frosty := property.NewBinding(func() bool {
		return fahrenheit.Get() <= 32
	}, fahrenheit)

	frosty.AddListener(func(_ property.ObservableValue[bool], _, newValue bool) {
		fmt.Println("frosty now:", newValue)
	})

	celsius.Set(21)
	fmt.Printf("%v C = %v F, frosty: %v\n", celsius.Get(), fahrenheit.Get(), frosty.Get())

	celsius.Set(-5)
	fmt.Printf("%v C = %v F, frosty: %v\n", celsius.Get(), fahrenheit.Get(), frosty.Get())
}
