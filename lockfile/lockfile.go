// Package lockfile serializes invocations against the VPN daemon.
// The daemon itself does nothing to arbitrate concurrent connect and
// reconnect commands, so the read-decide-command sequence is wrapped in
// an advisory file lock. Locks left behind by dead processes are
// detected by PID liveness and reclaimed.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/yllada/relay-cycler/common"
)

// Lock is a held advisory lock. Release it when the daemon commands for
// this invocation are done.
type Lock struct {
	path  string
	token string
}

// Acquire takes the advisory lock in the application config directory.
// A live holder yields common.ErrLockHeld; a stale lock (holder PID no
// longer alive) is reclaimed once.
func Acquire() (*Lock, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return nil, err
	}
	return AcquireAt(filepath.Join(configDir, common.LockFileName))
}

// AcquireAt takes the advisory lock at an explicit path.
func AcquireAt(path string) (*Lock, error) {
	lock := &Lock{path: path, token: uuid.NewString()}

	if err := lock.create(); err == nil {
		return lock, nil
	} else if !os.IsExist(err) {
		return nil, common.WrapError(err, "failed to create lock file")
	}

	holder, ok := readHolderPID(path)
	if ok && pidAlive(holder) {
		return nil, common.WrapError(common.ErrLockHeld, fmt.Sprintf("pid %d", holder))
	}

	// Holder is gone; reclaim and retry once.
	common.LogWarn("removing stale lock %s (pid %d)", path, holder)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, common.WrapError(err, "failed to remove stale lock")
	}
	if err := lock.create(); err != nil {
		if os.IsExist(err) {
			return nil, common.ErrLockHeld
		}
		return nil, common.WrapError(err, "failed to create lock file")
	}
	return lock, nil
}

// create writes the lock file exclusively with this process's identity.
func (l *Lock) create() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%d %s\n", os.Getpid(), l.token)
	return err
}

// Release removes the lock file if this lock still owns it.
func (l *Lock) Release() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Someone reclaimed the lock from us; leave their file alone.
	if !strings.Contains(string(data), l.token) {
		return nil
	}
	return os.Remove(l.path)
}

// readHolderPID parses the PID recorded in an existing lock file.
func readHolderPID(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, false
	}
	pid, err := strconv.Atoi(fields[0])
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// pidAlive reports whether a process with the given PID exists.
func pidAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
