package ordercache

const (
	// defaultReservedOrderSlots specifies initial size of hashmap array storing orders by order id.
	defaultReservedOrderSlots = 1024

	// defaultReservedIndexSlots specifies initial size of hashmap arrays backing the secondary indexes.
	defaultReservedIndexSlots = 256

	// cancelChunkSize specifies size of id chunks processed by a single worker
	// during parallel batch cancellation. Batches up to this size are always
	// cancelled serially, the chunking overhead does not pay off for them.
	cancelChunkSize = 64
)
