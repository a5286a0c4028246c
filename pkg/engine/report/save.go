package report

import (
	"context"
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/DrSkyle/shopnet/pkg/storage"
)

// Key derives the blob key for a report: the source base name with the
// format as extension, under prefix.
func Key(prefix, source, format string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return path.Join(prefix, base+"."+format)
}

// Save encodes rep and stores it in blob under prefix. It returns the key written.
func Save(ctx context.Context, blob storage.BlobStore, prefix, format string, rep Report) (string, error) {
	data, err := Marshal(format, rep)
	if err != nil {
		return "", err
	}

	key := Key(prefix, rep.Source, format)
	if err := blob.Put(ctx, key, data); err != nil {
		return "", err
	}
	return key, nil
}

// Exists reports whether a report for rep is already stored in blob under prefix.
func Exists(ctx context.Context, blob storage.BlobStore, prefix, format string, rep Report) (string, bool, error) {
	key := Key(prefix, rep.Source, format)
	_, err := blob.Get(ctx, key)
	switch {
	case err == nil:
		return key, true, nil
	case errors.Is(err, storage.ErrNotFound):
		return key, false, nil
	default:
		return key, false, err
	}
}
