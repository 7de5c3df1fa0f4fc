package flock

import "iter"

const slotBlockSize = 64

// slots stores values of type T in fixed-size blocks. Indices and element
// addresses stay stable until compact is called; growing allocates a new
// block and never moves existing ones. Freed indices are reused by later appends.
type slots[T any] struct {
	blocks    []*[slotBlockSize]T
	filled    []*[slotBlockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

func (s *slots[T]) append(item T) int {
	var index int
	if len(s.freeSlots) > 0 {
		index = s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]
	} else {
		index = s.nextIndex
		s.nextIndex++
		if index/slotBlockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, new([slotBlockSize]T))
			s.filled = append(s.filled, new([slotBlockSize]bool))
		}
	}

	blockIdx := index / slotBlockSize
	slotIdx := index % slotBlockSize
	s.blocks[blockIdx][slotIdx] = item
	s.filled[blockIdx][slotIdx] = true
	s.count++
	return index
}

// get returns a pointer to the value at index, or nil if the slot is empty.
func (s *slots[T]) get(index int) *T {
	if !s.has(index) {
		return nil
	}
	return &s.blocks[index/slotBlockSize][index%slotBlockSize]
}

func (s *slots[T]) has(index int) bool {
	if index < 0 || index >= s.nextIndex {
		return false
	}
	return s.filled[index/slotBlockSize][index%slotBlockSize]
}

func (s *slots[T]) delete(index int) bool {
	if !s.has(index) {
		return false
	}

	blockIdx := index / slotBlockSize
	slotIdx := index % slotBlockSize

	var zero T
	s.filled[blockIdx][slotIdx] = false
	s.blocks[blockIdx][slotIdx] = zero
	s.freeSlots = append(s.freeSlots, index)
	s.count--
	return true
}

func (s *slots[T]) len() int {
	return s.count
}

// compact moves every value to the front of storage and returns the
// old-to-new index mapping of the values that moved or stayed.
func (s *slots[T]) compact() map[int]int {
	indexMap := make(map[int]int, s.count)

	numBlocks := (s.count + slotBlockSize - 1) / slotBlockSize
	newBlocks := make([]*[slotBlockSize]T, numBlocks)
	newFilled := make([]*[slotBlockSize]bool, numBlocks)
	for i := range newBlocks {
		newBlocks[i] = new([slotBlockSize]T)
		newFilled[i] = new([slotBlockSize]bool)
	}

	writePos := 0
	for readIdx := range s.iter() {
		indexMap[readIdx] = writePos
		newBlocks[writePos/slotBlockSize][writePos%slotBlockSize] = s.blocks[readIdx/slotBlockSize][readIdx%slotBlockSize]
		newFilled[writePos/slotBlockSize][writePos%slotBlockSize] = true
		writePos++
	}

	s.blocks = newBlocks
	s.filled = newFilled
	s.freeSlots = nil
	s.nextIndex = writePos
	return indexMap
}

func (s *slots[T]) iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < s.nextIndex; i++ {
			if s.filled[i/slotBlockSize][i%slotBlockSize] {
				if !yield(i) {
					return
				}
			}
		}
	}
}
