// Package narratives associates narrative clusters with the articles they
// reference.
//
// A narrative materializes its article membership as an explicit id list, so
// association is a filter over that list and resolution is a best-effort join
// against whatever articles the caller has cached. The narrative store and the
// article store page independently and can be transiently inconsistent; an id
// without a cached article is dropped silently rather than treated as an
// error.
package narratives
