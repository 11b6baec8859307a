// Package scaffold creates each peer target's directory skeleton and stub
// files from embedded templates. Every write is conditional on absence:
// files a user has edited (or an earlier run created) are never touched, so
// re-running after the first scaffold is a no-op.
package scaffold
