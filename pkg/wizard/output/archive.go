package output

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
)

// ErrDuplicateEntry indicates two archive entries with the same name.
var ErrDuplicateEntry = errors.New("duplicate archive entry")

// ArchiveEntry is one file of an archive.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// SerializeArchive packs entries into a deflate-compressed zip archive, in
// the given order.
func SerializeArchive(entries []ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if seen[entry.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, entry.Name)
		}
		seen[entry.Name] = true

		w, err := zw.CreateHeader(&zip.FileHeader{Name: entry.Name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", entry.Name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
