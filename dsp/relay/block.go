package relay

// Block is one mono run of samples. Data's capacity is fixed at
// construction; its length is the fill.
type Block struct {
	Data []float64
}

// NewBlock returns an empty Block with room for size samples.
func NewBlock(size int) Block {
	return Block{Data: make([]float64, 0, size)}
}

// Set copies src into b, truncating to b's capacity. It never allocates.
func (b *Block) Set(src []float64) {
	n := min(len(src), cap(b.Data))
	b.Data = b.Data[:n]
	copy(b.Data, src[:n])
}

// Len returns the number of valid samples.
func (b *Block) Len() int {
	return len(b.Data)
}

// CopyBlock copies src's samples into dst's storage.
func CopyBlock(dst, src *Block) {
	dst.Set(src.Data)
}

// NewBlockRelay returns a relay of capacity Blocks, each preallocated to
// blockSize samples. Pull destinations should come from NewBlock with the
// same size, or samples past their capacity are dropped.
func NewBlockRelay(capacity, blockSize int) *Relay[Block] {
	return New[Block](capacity,
		WithSlotInit(func(b *Block) { *b = NewBlock(blockSize) }),
		WithCopy(CopyBlock),
	)
}
