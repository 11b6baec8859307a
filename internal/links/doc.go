// Package links reconciles the links root (Packages/Skip by default)
// against the current peer target plans. Each run rediscovers state from
// the filesystem itself — no manifest of previously created links is kept —
// so the synchronizer is stateless and converges from any starting state:
// stale links and emptied directories are removed first, then one
// subdirectory with two links is created per plan whose external build
// output exists.
package links
