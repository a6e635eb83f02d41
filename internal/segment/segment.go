// Package segment wraps UAX #29 text segmentation for the textinput
// core: grapheme-cluster steps for caret movement and word boundaries
// for word-wise navigation.
package segment

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// FirstCluster returns the first grapheme cluster of text, or "" when
// text is empty.
func FirstCluster(text string) string {
	if text == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	return cluster
}

// LastCluster returns the final grapheme cluster of text, or "" when
// text is empty.
func LastCluster(text string) string {
	var last string
	state := -1
	for text != "" {
		last, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
	}
	return last
}

// ClusterPrefixLen returns the length in bytes of the first n grapheme
// clusters of text. If text has fewer than n clusters, returns the
// length of the whole string.
func ClusterPrefixLen(text string, n int) int {
	total := 0
	state := -1
	var cluster string
	for text != "" && n > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		total += len(cluster)
		n--
	}
	return total
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	n := 0
	state := -1
	for text != "" {
		_, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		n++
	}
	return n
}

// Words splits text into word-boundary segments. Every byte of text
// appears in exactly one segment; whitespace and punctuation runs form
// segments of their own.
func Words(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	var word string
	state := -1
	for text != "" {
		word, text, state = uniseg.FirstWordInString(text, state)
		out = append(out, word)
	}
	return out
}

// HasAlphanumeric reports whether any rune in s is a letter or number.
// Word navigation skips segments for which this is false.
func HasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
