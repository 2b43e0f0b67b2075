// Package models defines domain entities and store contracts for the tdx task list.
//
// The package contains two categories of types:
//
// 1. Domain entities:
//   - [Task] : A single to-do item with immutable id and creation timestamp
//
// 2. Contracts and transfer types:
//   - [Store] : Client-side collection with write-through persistence
//   - [SyncReceipt] : Server confirmation returned by a successful sync push
//   - [HealthStatus] : Server liveness report
//
// The sync protocol is deliberately one-way: the client pushes its full
// collection and the server replaces its in-memory copy wholesale. Nothing in
// this package models conflict resolution because none exists.
package models
