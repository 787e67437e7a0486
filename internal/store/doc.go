// Package store provides SQLite-backed storage for solved (and unsolvable)
// hands.
//
// Each row is keyed by the hand in input order plus the target, so the log
// doubles as a cache: the CLI looks a hand up before searching and saves the
// outcome afterwards. Rows written by one CLI invocation share a run id.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait on lock contention
//   - Single connection: SQLite has one writer
package store
