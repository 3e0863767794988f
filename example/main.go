package main

import (
	"fmt"

	"github.com/theflywheel/chainmap"
)

func main() {
	m := chainmap.New[string, int]()

	fmt.Println("Map created with default capacity")

	// Insert some data
	for i := 0; i < 10; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i*100)
	}

	fmt.Printf("Inserted 10 key-value pairs, size=%d\n", m.Size())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		value, found := m.Get(key)
		if found {
			fmt.Printf("Key %s => Value %d\n", key, value)
		} else {
			fmt.Printf("Key %s not found\n", key)
		}
	}

	// Update a value
	m.Put("key-2", 999)

	// Verify the update
	value, found := m.Get("key-2")
	if found {
		fmt.Printf("Updated key-2 => Value %d\n", value)
	}

	// Remove an entry
	if m.Remove("key-3") {
		fmt.Printf("Removed key-3, size=%d\n", m.Size())
	}

	// Grow the map past its default capacity, then empty it two ways.
	for i := 0; i < 1000; i++ {
		m.Put(fmt.Sprintf("bulk-%d", i), i)
	}
	fmt.Printf("After bulk insert: size=%d\n", m.Size())

	m.Clear()
	fmt.Printf("After Clear: size=%d, empty=%v (capacity retained)\n", m.Size(), m.Empty())

	m.Reset()
	fmt.Printf("After Reset: size=%d, empty=%v (capacity back to default)\n", m.Size(), m.Empty())

	fmt.Println("Example completed successfully")
}
