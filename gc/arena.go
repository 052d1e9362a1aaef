package gc

// zeroAlloc is a sentinel returned for zero-sized allocations, shared by
// both arena backends below, mirroring the teacher's zeroSizedAlloc.
var zeroAlloc uint64
