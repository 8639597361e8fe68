// Package match ranks identifiers by edit distance so lookups of a
// misspelled type name can suggest the names that were probably meant.
package match
