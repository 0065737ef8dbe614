// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package sbdd implements a shared, reduced, ordered Binary Decision Diagram
(BDD) with complement edges: a canonical data structure for representing
Boolean functions over a fixed set of variables.

Basics

A Manager owns a fixed number of variables, declared when it is created with
New, and a single pool of nodes shared by every function ever synthesized
through it. Most operations take and return a Handle: an edge into that
pool, encoded as a node id together with a single complement bit so that
negation never allocates.

The engine

Every Boolean operator reduces to one call to Ite, the if-then-else
synthesis primitive: ite(f,g,h) = f·g + f'·h. Ite standardizes its operands,
consults a memo cache, and otherwise recurses on the topmost variable any of
its three operands still depends on, rebuilding a canonical node through the
same find-or-add unique table that guarantees two functions are represented
by the same node if and only if they are the same function.

Automatic memory management

There is no incremental, per-node garbage collector: a Manager tracks
reference counts on nodes but only reclaims memory in bulk, either when the
node pool is resized under memory pressure or when a caller explicitly calls
Clear. This mirrors the single mass-release primitive its source design
settles on over trying to replicate a C++ destructor's per-node teardown in
a garbage-collected host language.
*/
package sbdd
