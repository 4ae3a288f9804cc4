// Package swaptrace plans the swaps that rearrange an array when every move
// has to pass through a single empty slot.
//
// 🚀 What is swaptrace?
//
//	A small, dependency-light library plus a demonstration CLI:
//		• swapplan/  — Trace (evacuate-then-fill planner), Validate, Plan.Apply,
//		               lookup strategies, OnStep observer, RandomInstance
//		• cmd/swaptrace + internal/cli — `plan` and `random` commands
//
// Quick ASCII example (sentinel -1 is the empty slot):
//
//	[ 1  2  3 -1  4  5 ]   swap (0 3)   [-1  2  3  1  4  5 ]
//	                       swap (0 5)   [ 5  2  3  1  4 -1 ]
//	                       ...
//	                                    [ 5  1 -1  3  2  4 ]
//
//	go get github.com/katalvlaran/swaptrace/swapplan
package swaptrace
