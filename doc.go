// Package mazeweave carves perfect spanning-tree mazes over abstract cell
// grids — randomized minimum-spanning-tree construction plus live graph
// surgery for weave crossings and long tunnels.
//
// 🚀 What is mazeweave?
//
//	A small, deterministic, zero-runtime-dependency library that brings together:
//		• Grid primitives: flat-indexed cells, directional topology, passage carving
//		• Component registry: union-find with eagerly folded membership lists
//		• Randomized MST engines: Kruskal (weight order) and Borůvka (rounds)
//		• Weave splicer: 3-cell tunnels routing one passage under another
//		• Long tunnel builder: straight under-chains of arbitrary length
//
// ✨ Why choose mazeweave?
//
//   - Reproducible – every stateful object takes an explicit, seedable RNG
//   - Rock-solid invariants – passages = cells − components at every step
//   - Pure Go – no cgo, no hidden deps
//   - Honest about disconnection – engines report a spanning forest, never lie
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/       — Cell, Grid, Direction: topology and passage primitives
//	components/ — the component Registry shared by both engines
//	spanning/   — edge universe, weights, Kruskal, Borůvka, weaves, tunnels
//
// Quick ASCII example of a weave crossing (B passes under A─A):
//
//	    · A ·
//	    B═╬═B
//	    · A ·
//
//	the vertical A-passage runs over, the horizontal B-tunnel under.
//
// Dive into the per-package doc.go files for tutorials, complexity notes
// and the full invariant catalogue.
//
//	go get github.com/katalvlaran/mazeweave
package mazeweave
