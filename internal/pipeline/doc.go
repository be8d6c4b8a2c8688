// Package pipeline implements the six pure stages of a Logos run and the
// assembly of their outputs into a domain.Result.
//
// Every stage is a pure function of its inputs and the domain constants.
// Not-a-number and infinite values are carried through untouched.
package pipeline
