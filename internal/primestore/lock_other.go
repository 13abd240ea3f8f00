//go:build !unix

package primestore

import "os"

// O_APPEND writes are the only guard on platforms without flock.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
