package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

// Entry is one file placed in an archive.
type Entry struct {
	Filename string
	Modified time.Time
	Data     []byte
}

// Archive packs entries into an in-memory zip file. Duplicate filenames are rejected.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.Filename]; dup {
			return nil, fmt.Errorf("duplicate entry %q", entry.Filename)
		}
		seen[entry.Filename] = struct{}{}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     entry.Filename,
			Method:   zip.Deflate,
			Modified: entry.Modified,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", entry.Filename, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", entry.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
