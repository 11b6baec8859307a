// Package project defines the host project model: the set of source build
// targets, their kinds, and their dependency edges, as declared in the
// project descriptor at .ktbridge/project.yaml. The package only reads the
// model — it validates the descriptor against an embedded JSON Schema,
// applies path defaults, and enforces the descriptor's minToolVersion gate.
package project
