package core

import "os/exec"

// CmdSpawn launches arg (a []string argv) as a detached child process.
// The backend's connection is opened close-on-exec (§5 "inherit no backend
// handle"), so the child never sees it; Go marks every file it opens
// close-on-exec by default, matching the C source's explicit
// close(ConnectionNumber(dpy)) after fork.
func CmdSpawn(ctx *Context, arg interface{}) bool {
	argv, ok := arg.([]string)
	if !ok || len(argv) == 0 {
		return false
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return false
	}
	// Deliberately does not call cmd.Wait: the child is reaped by
	// internal/procreap's SIGCHLD handler, not by this goroutine.
	return true
}
