// Package texttool provides the text tools count_vowels, count_letters and
// count_words.
package texttool
