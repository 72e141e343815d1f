// Package app assembles a running font organizer: it scans the font
// directories, restores the overlay, and connects the Store to the
// export capabilities. Both commands build on it.
package app
