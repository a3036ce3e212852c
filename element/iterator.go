package element

// Iterator enumerates elements lazily, without ever materialising the full sequence. All iterators
// of this package are restartable through Reset.
type Iterator interface {
	// HasNext returns true if the iterator has another element to visit.
	HasNext() bool
	// Next returns the next element of the enumeration.
	Next() *DiscreteElement
	// Reset restarts the enumeration from the beginning.
	Reset()
}

// PowersetIterator enumerates all 2^size elements of a frame of discernment in encoding order,
// starting with the empty element. The enumeration is driven by a carry-propagating word counter,
// so only one element exists at a time.
type PowersetIterator struct {
	size  int
	words []uint64
	done  bool
}

// NewPowersetIterator creates an iterator over the powerset of a frame of the given size. A
// non-positive size yields an exhausted iterator.
func NewPowersetIterator(size int) *PowersetIterator {
	return &PowersetIterator{
		size:  size,
		words: make([]uint64, wordsForSize(size)),
		done:  size <= 0,
	}
}

// HasNext returns true if the iterator has another element to visit.
func (p *PowersetIterator) HasNext() bool {
	return !p.done
}

// Next returns the next element of the powerset.
func (p *PowersetIterator) Next() *DiscreteElement {
	element := NewUnsafe(p.size, p.words...)
	p.advance()

	return element
}

// Reset restarts the enumeration at the empty element.
func (p *PowersetIterator) Reset() {
	for i := range p.words {
		p.words[i] = 0
	}
	p.done = p.size <= 0
}

func (p *PowersetIterator) advance() {
	carry := true
	for i := 0; carry && i < len(p.words); i++ {
		p.words[i]++
		carry = p.words[i] == 0
	}

	// the counter wrapped, or it reached 2^size
	overflow := uint(p.size-1)%64 + 1
	if carry || p.words[len(p.words)-1]>>overflow != 0 {
		p.done = true
	}
}

// AtomicIterator enumerates the atomic (singleton) elements of a frame of discernment, one per
// state, in state order.
type AtomicIterator struct {
	size int
	next int
}

// NewAtomicIterator creates an iterator over the atomic elements of a frame of the given size. A
// non-positive size yields an exhausted iterator.
func NewAtomicIterator(size int) *AtomicIterator {
	return &AtomicIterator{size: size}
}

// HasNext returns true if the iterator has another element to visit.
func (a *AtomicIterator) HasNext() bool {
	return a.next < a.size
}

// Next returns the next atomic element.
func (a *AtomicIterator) Next() *DiscreteElement {
	element := a.atomic(a.next)
	a.next++

	return element
}

// Reset restarts the enumeration at the first state.
func (a *AtomicIterator) Reset() {
	a.next = 0
}

func (a *AtomicIterator) atomic(state int) *DiscreteElement {
	element := NewUnsafe(a.size)
	element.bits.Set(uint(state))
	element.card = 1

	return element
}
