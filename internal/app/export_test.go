package app

// MergeTarget is exported for testing.
var MergeTarget = mergeTarget
