// Package generator composes passwords from fixed character classes.
//
// Every password contains at least one uppercase letter, one lowercase
// letter and one digit. Optionally it also contains:
//   - at least one Symbol character (+ - / *)
//   - between 1 and Length/3 Special punctuation characters
//
// Composition:
//   - positions 0..2 are seeded with Upper, Lower, Digit (and 3 with Symbol)
//   - the Special quota is drawn uniformly from [1, Length/3]
//   - the last quota positions are reserved for Special characters
//   - every other position draws uniformly from the enabled free classes
//   - the whole buffer is shuffled with Fisher-Yates
//
// All draws come from crypto/rand. Results live in secure.Buffer values
// that the caller must Destroy.
package generator
