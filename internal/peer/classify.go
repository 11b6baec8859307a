package peer

import (
	"strings"

	"github.com/ktbridge/ktbridge/internal/project"
)

// PeerKind classifies a synthesized peer target.
type PeerKind string

const (
	// LibraryPeer wraps an ordinary source target.
	LibraryPeer PeerKind = "library"
	// TestPeer wraps a test source target.
	TestPeer PeerKind = "test"
)

const (
	// LibrarySuffix is appended to a source target name to form its
	// library peer's name.
	LibrarySuffix = "Kt"
	// TestSuffix is appended to a test target's stem to form its test
	// peer's name.
	TestSuffix = "KtTests"

	// testNameSuffix is the conventional trailing segment of a test
	// target's name, stripped to recover the base name.
	testNameSuffix = "Tests"
)

// Classify derives the peer name, peer kind, and base name for a source
// target. A test target whose name does not end in "Tests" violates the
// host convention; it is classified with its full name as the base rather
// than rejected.
func Classify(name string, kind project.Kind) (peerName string, peerKind PeerKind, baseName string) {
	if kind == project.KindTest {
		baseName = strings.TrimSuffix(name, testNameSuffix)
		return baseName + TestSuffix, TestPeer, baseName
	}
	return name + LibrarySuffix, LibraryPeer, name
}

// IsPeerName reports whether a target name already carries a peer suffix,
// meaning it was synthesized by an earlier run and must not be treated as
// a source target.
func IsPeerName(name string) bool {
	return strings.HasSuffix(name, LibrarySuffix) || strings.HasSuffix(name, TestSuffix)
}
