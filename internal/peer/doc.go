// Package peer derives the Kotlin peer targets for a project's source
// targets. It owns the peer naming rules (Foo -> FooKt, FooTests ->
// FooKtTests), selects the eligible source targets in deterministic order,
// and plans each peer's dependency list, resource attachment, and expected
// build-output location. Planning is pure: it reads the project model and
// produces Plans, never touching the filesystem.
package peer
