// Package measure holds the container layouts compared by the
// simphotons-choices benchmark: ordered and hashed maps, arrays of
// structs and structs of arrays, each backed by a vector, a deque or a
// singly linked list.
package measure

import "unsafe"

// Record is one measurement: the tick it was taken at and the number of
// photons counted.
type Record struct {
	Tick  int32
	NPhot int32
}

const recordSize = int(unsafe.Sizeof(Record{}))

// Result is what FindLargest returns.
type Result struct {
	Key   int32
	Value int32
}

// NoResult is the Result of scanning an empty container.
func NoResult() Result { return Result{Key: -1, Value: -1} }

// Layout is a container shape holding measurement pairs.
type Layout interface {
	Name() string
	// Fill clears the container and stores n generated pairs.
	Fill(n int)
	Len() int
	// Sum adds up the photon counts without looking at the ticks.
	Sum() int
	// FindLargest returns the first pair, in iteration order, holding the
	// largest photon count.
	FindLargest() Result
	Clear()
	// Footprint is an estimate of the bytes held by the container.
	Footprint() int
}

// Layouts returns a fresh instance of every layout in report order.
func Layouts() []Layout {
	return []Layout{
		NewOrderedMap(),
		NewHashMap(),
		&AOSVector{},
		&AOSDeque{},
		&AOSList{},
		&AOSPointers{},
		&AOSArena{},
		&SOAVector{},
		&SOADeque{},
		&SOAList{},
		&SOAVectorSIMD{},
	}
}

// Lookup returns a fresh layout by name.
func Lookup(name string) (Layout, bool) {
	for _, l := range Layouts() {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}

// Sum dispatches to the layout.
func Sum(l Layout) int { return l.Sum() }

// FindLargest dispatches to the layout.
func FindLargest(l Layout) Result { return l.FindLargest() }
