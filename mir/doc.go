// Package mir is the tree produced by parsing a MIR pattern, together with the
// printer that turns it back into the tokens it came from.
//
// Sum types are interfaces with an unexported marker method; the markers live
// in sum_gen.go, generated from nodes.sum.
package mir

//go:generate sh -c "cd ../tool && go run . ../mir/nodes.sum ../mir/sum_gen.go mir"
