// Package core implements the display-server-agnostic model of a dynamic
// tiling window manager: monitors, clients, tag-sets, layouts, focus, and
// the event dispatcher that ties them together. It consumes a DisplayBackend
// and never imports an X11 binding directly, so it can be unit-tested with a
// fake backend and no live display connection.
package core
