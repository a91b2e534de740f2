/*
Package queue defines tasks to be performed to learn a tree
as well as an interface for a Queue to manage them.

It also provides an in-memory implementation of the Queue interface,
used as the work-list of nodes to learn.
*/
package queue
