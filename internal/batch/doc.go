// Package batch groups mailing-list entries into fixed-capacity batches.
//
// Downstream mail clients cap the number of recipients per message, so the
// database keeps its entries partitioned into ordered batches of at most
// Capacity addresses. Key operations:
//   - Flatten: concatenate all batches back into one ordered entry list
//   - Rebuild: partition an entry list into consecutive capacity-sized chunks
//   - Optimize: repack to the minimum batch count without reordering
//
// Rebuild is the single packing primitive; add, remove and optimize all go
// through it, which keeps batch ids contiguous from 1 and entry order stable.
package batch
