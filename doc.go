// Package dsakit is an in-memory playground for the fundamental data
// structures and algorithms — each one a small, self-contained package
// you can read top to bottom.
//
// 🚀 What is dsakit?
//
//	A modern, single-threaded, pure-Go toolkit that brings together:
//		• Growable array: amortized O(1) append with resize & shrink policy
//		• Singly linked list: head-only node chain with in-place reversal
//		• Stack & queue: thin LIFO/FIFO adapters with fail-fast iteration
//		• Graph: adjacency-list store, directed/undirected, BFS & DFS
//		• Search: the binary-search family (first/last/lower-bound/rotated)
//		• Merge sort: stable O(n log n), recursive and bottom-up variants
//
// ✨ Why choose dsakit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit contracts – every operation documents its complexity & errors
//   - Pure Go – generics, no cgo, no hidden deps
//   - Deterministic – traversals and renderings are fully reproducible
//
// Everything is organized as one package per structure:
//
//	dynarr/    — growable array with capacity doubling & shrink-on-underuse
//	sllist/    — singly linked list (head-only, O(1) front operations)
//	stack/     — LIFO adapter over dynarr
//	queue/     — FIFO ring-buffer queue
//	graph/     — adjacency-list graph + BFS/DFS traversal
//	search/    — binary search variants over sorted sequences
//	mergesort/ — stable merge sort
//	cmd/dsademo/ — runnable console demonstrations of every component
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	represents an undirected square: graph.BFS(1) visits [1 2 3 4].
//
//	go get github.com/lvlup/dsakit
package dsakit
