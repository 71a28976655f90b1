// Package loader reads serialized bytecode containers into the in-memory
// form the disassembler consumes: it detects the revision from the header
// magic, extracts the compilation timestamp, and deserializes the root
// code object and everything nested inside it.
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/pydasm-io/pydasm/bytecode"
)

// HeaderError indicates a container too short or malformed before the
// serialized object graph even starts.
type HeaderError struct {
	Name   string
	Reason string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("invalid container header in %s: %s", e.Name, e.Reason)
}

// LoadFile reads a bytecode container from disk. Set pypy when the
// container is known to come from the alternate runtime; the header does
// not record that by itself.
func LoadFile(path string, pypy bool) (*bytecode.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, path, pypy)
}

// Load reads a bytecode container from r. name is used in diagnostics.
func Load(r io.Reader, name string, pypy bool) (*bytecode.Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) < 8 {
		return nil, &HeaderError{Name: name, Reason: "shorter than the fixed header"}
	}
	if data[2] != '\r' || data[3] != '\n' {
		return nil, &HeaderError{Name: name, Reason: "magic is not terminated with \\r\\n"}
	}

	magic := binary.LittleEndian.Uint16(data[0:2])
	rev, err := RevisionForMagic(magic)
	if err != nil {
		return nil, err
	}
	rev.PyPy = pypy

	timestamp := int64(binary.LittleEndian.Uint32(data[4:8]))
	body := data[8:]

	// 3.3 added the source size to the header.
	if rev.Major > 3 || (rev.Major == 3 && rev.Minor >= 3) {
		if len(body) < 4 {
			return nil, &HeaderError{Name: name, Reason: "missing source size field"}
		}
		body = body[4:]
	}

	log.Debug().
		Str("container", name).
		Stringer("revision", rev).
		Uint16("magic", magic).
		Int64("timestamp", timestamp).
		Int("body_bytes", len(body)).
		Msg("parsed container header")

	root, err := readCodeObject(body, rev)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &bytecode.Program{
		Revision:  rev,
		Timestamp: timestamp,
		Root:      root,
	}, nil
}
