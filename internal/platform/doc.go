// Package platform wraps the OS-specific filesystem primitives ktbridge
// needs, chiefly symbolic links with a Windows copy fallback for hosts
// without developer mode.
package platform
