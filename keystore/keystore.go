// Package keystore persists the FHE secret key and the encrypted
// symmetric key bits a named FiLIP instance needs to survive across
// process runs, so an Encrypter and its paired Decrypter started at
// different times still share the same keys (spec.md §6, "key
// persistence"). Keys live under a root directory, defaulting to the
// KEY_DIRECTORY environment variable, as keys/<name>/fhe/secret_key
// and keys/<name>/symmetric/key_<descriptor>.
package keystore

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/glwe"
)

const envRoot = "KEY_DIRECTORY"

// Store roots a key hierarchy at a fixed directory.
type Store struct {
	Root string
}

// New binds a Store to root.
func New(root string) *Store {
	return &Store{Root: root}
}

// NewFromEnv binds a Store to KEY_DIRECTORY, falling back to "keys" in
// the current directory when unset.
func NewFromEnv() *Store {
	root := os.Getenv(envRoot)
	if root == "" {
		root = "keys"
	}
	return &Store{Root: root}
}

func (s *Store) fheDir(name string) string {
	return filepath.Join(s.Root, "keys", name, "fhe")
}

func (s *Store) fhePath(name string) string {
	return filepath.Join(s.fheDir(name), "secret_key")
}

func (s *Store) symmetricDir(name string) string {
	return filepath.Join(s.Root, "keys", name, "symmetric")
}

func (s *Store) symmetricPath(name, descriptor string) string {
	return filepath.Join(s.symmetricDir(name), "key_"+descriptor)
}

// writeAtomic writes the bytes produced by write to a temp file next to
// path and renames it into place, so a crash mid-write never leaves a
// half-written key behind.
func writeAtomic(path string, write func(w io.Writer) (int64, error)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// HasFHESecretKey reports whether an FHE secret key is already stored
// for name.
func (s *Store) HasFHESecretKey(name string) bool {
	_, err := os.Stat(s.fhePath(name))
	return err == nil
}

// SaveFHESecretKey atomically writes sk under name.
func (s *Store) SaveFHESecretKey(name string, sk *glwe.SecretKey) error {
	return writeAtomic(s.fhePath(name), sk.WriteTo)
}

// LoadFHESecretKey reads back the FHE secret key stored under name,
// allocated to params' shape.
func (s *Store) LoadFHESecretKey(name string, params glwe.Parameters) (*glwe.SecretKey, error) {
	f, err := os.Open(s.fhePath(name))
	if err != nil {
		return nil, fmt.Errorf("keystore: load fhe key %q: %w", name, err)
	}
	defer f.Close()

	sk := glwe.NewEmptySecretKey(params)
	if _, err := sk.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("keystore: load fhe key %q: %w", name, err)
	}
	return sk, nil
}

// HasSymmetricKey reports whether a symmetric key with the given
// descriptor is already stored for name.
func (s *Store) HasSymmetricKey(name, descriptor string) bool {
	_, err := os.Stat(s.symmetricPath(name, descriptor))
	return err == nil
}

// SaveSymmetricKey atomically writes key (length-prefixed, then one
// Mux serialization per entry) under name/descriptor. descriptor
// identifies which world the Muxes belong to (cipher.MuxFactory's
// Descriptor(), e.g. "ggsw" or "clear") so a clear-world key is never
// mistakenly loaded as an encrypted one.
func (s *Store) SaveSymmetricKey(name, descriptor string, key []cipher.Mux) error {
	return writeAtomic(s.symmetricPath(name, descriptor), func(w io.Writer) (int64, error) {
		var total int64
		var lenBuf [8]byte
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(key)))
		n, err := w.Write(lenBuf[:])
		total += int64(n)
		if err != nil {
			return total, err
		}
		for _, m := range key {
			n64, err := m.WriteTo(w)
			total += n64
			if err != nil {
				return total, err
			}
		}
		return total, nil
	})
}

// LoadSymmetricKey reads back the key stored under name/descriptor,
// calling alloc once per entry to get an empty Mux of the right shape
// to deserialize into.
func (s *Store) LoadSymmetricKey(name, descriptor string, alloc func() cipher.Mux) ([]cipher.Mux, error) {
	f, err := os.Open(s.symmetricPath(name, descriptor))
	if err != nil {
		return nil, fmt.Errorf("keystore: load symmetric key %q/%q: %w", name, descriptor, err)
	}
	defer f.Close()

	var lenBuf [8]byte
	if _, err := io.ReadFull(f, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("keystore: load symmetric key %q/%q: %w", name, descriptor, err)
	}
	kappa := binary.BigEndian.Uint64(lenBuf[:])

	key := make([]cipher.Mux, kappa)
	for i := range key {
		m := alloc()
		if _, err := m.ReadFrom(f); err != nil {
			return nil, fmt.Errorf("keystore: load symmetric key %q/%q: %w", name, descriptor, err)
		}
		key[i] = m
	}
	return key, nil
}
