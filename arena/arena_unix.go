//go:build unix

package arena

import "golang.org/x/sys/unix"

// NewAnonymous reserves size bytes of anonymous, zero-filled memory,
// not backed by any file. writable controls whether the mapping is
// PROT_READ|PROT_WRITE or PROT_READ only.
func NewAnonymous(size int64, writable bool) (*Arena, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	prot := unix.PROT_READ
	if writable {
		prot |= unix.PROT_WRITE
	}

	data, err := unix.Mmap(-1, 0, int(size), prot, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, &Error{Op: "mmap anonymous", Err: err}
	}

	return &Arena{data: data, size: size, writable: writable}, nil
}

// Close releases the mapping.
func (a *Arena) Close() error {
	if a.data == nil {
		return nil
	}
	err := unix.Munmap(a.data)
	a.data = nil
	a.size = 0
	return err
}

// Lock locks the mapped pages in memory, preventing them from being
// swapped out.
func (a *Arena) Lock() error {
	if a.data == nil {
		return ErrNotMapped
	}
	return unix.Mlock(a.data)
}

// Unlock reverses Lock.
func (a *Arena) Unlock() error {
	if a.data == nil {
		return ErrNotMapped
	}
	return unix.Munlock(a.data)
}

// AdviseSequential hints that pages will be accessed sequentially,
// appropriate for a draining-iterator or bulk-build pass.
func (a *Arena) AdviseSequential() error {
	if a.data == nil {
		return ErrNotMapped
	}
	return unix.Madvise(a.data, unix.MADV_SEQUENTIAL)
}

// AdviseRandom hints that pages will be accessed randomly, appropriate
// for cursor-driven point lookups during an algorithm pass.
func (a *Arena) AdviseRandom() error {
	if a.data == nil {
		return ErrNotMapped
	}
	return unix.Madvise(a.data, unix.MADV_RANDOM)
}
