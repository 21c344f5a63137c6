// Package clearall implements the Clear All use case: the assembly is discarded, whatever it held.
package clearall
