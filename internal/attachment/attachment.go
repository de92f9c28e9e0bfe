// Package attachment keeps parent rows and their stored image files consistent.
//
// Files are always written before the rows that reference them are committed, and
// superseded files are removed only after the new state is committed. A row failure
// after a successful write leaves the new files in the store; they are logged as orphans.
package attachment

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"shop-admin-api/internal/media"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/database"
	"shop-admin-api/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Upload is one client supplied file
type Upload struct {
	Filename    string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// FromMultipart wraps a multipart form file
func FromMultipart(fh *multipart.FileHeader) Upload {
	return Upload{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// Inspect checks that u is an image no larger than maxBytes and records its sniffed content type
func Inspect(u *Upload, maxBytes int64) error {
	f, err := u.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	ctype, err := media.DetectImage(f, u.Size, maxBytes)
	if err != nil {
		return err
	}
	u.ContentType = ctype
	return nil
}

// Files are the storage names attached to one parent.
// In a persist callback they are the names written by the current call:
// an empty Primary or a nil Gallery means that part is unchanged.
type Files struct {
	Primary string
	Gallery []string
}

func (f Files) all() []string {
	out := make([]string, 0, len(f.Gallery)+1)
	if f.Primary != "" {
		out = append(out, f.Primary)
	}
	return append(out, f.Gallery...)
}

// Manager runs the create, update and delete lifecycles for one storage directory
type Manager struct {
	store media.Store
	tx    database.Transactor
	dir   string
	names *media.Namer
}

func NewManager(store media.Store, tx database.Transactor, dir string, names *media.Namer) *Manager {
	if names == nil {
		names = media.NewNamer(nil)
	}
	return &Manager{store: store, tx: tx, dir: dir, names: names}
}

// Key maps a storage name to its media key
func (m *Manager) Key(name string) string {
	return m.dir + "/" + name
}

// URL is the public address of a stored file, or "" when name is empty
func (m *Manager) URL(name string) string {
	if name == "" {
		return ""
	}
	return m.store.URL(m.Key(name))
}

// Create writes every upload, then runs persist in one transaction with the new names.
func (m *Manager) Create(ctx context.Context, primary *Upload, gallery []Upload, persist func(tx *gorm.DB, files Files) error) (Files, error) {
	files, err := m.writeAll(ctx, primary, gallery)
	if err != nil {
		return Files{}, err
	}

	if err := m.tx.InTx(ctx, func(tx *gorm.DB) error { return persist(tx, files) }); err != nil {
		m.logOrphans(ctx, "create", files, err)
		return Files{}, persistenceError(err)
	}
	return files, nil
}

// Update writes the replacement uploads and runs persist with their names. After commit
// the old primary is removed when a new one was supplied, and every old gallery file is
// removed when any gallery upload was supplied.
func (m *Manager) Update(ctx context.Context, current Files, primary *Upload, gallery []Upload, persist func(tx *gorm.DB, written Files) error) (Files, error) {
	written, err := m.writeAll(ctx, primary, gallery)
	if err != nil {
		return Files{}, err
	}

	if err := m.tx.InTx(ctx, func(tx *gorm.DB) error { return persist(tx, written) }); err != nil {
		m.logOrphans(ctx, "update", written, err)
		return Files{}, persistenceError(err)
	}

	var stale []string
	if written.Primary != "" && current.Primary != "" {
		stale = append(stale, current.Primary)
	}
	if written.Gallery != nil {
		stale = append(stale, current.Gallery...)
	}
	for _, name := range stale {
		if err := m.store.Delete(ctx, m.Key(name)); err != nil {
			logger.FromContext(ctx).Warn("superseded file not removed",
				zap.String("key", m.Key(name)), zap.Error(err))
		}
	}
	return written, nil
}

// Delete removes the primary file, then each gallery file, then runs persist to drop the rows.
// A store failure stops before any row is touched.
func (m *Manager) Delete(ctx context.Context, current Files, persist func(tx *gorm.DB) error) error {
	for _, name := range current.all() {
		if err := m.store.Delete(ctx, m.Key(name)); err != nil {
			return apperror.Storage(err)
		}
	}
	if err := m.tx.InTx(ctx, persist); err != nil {
		logger.FromContext(ctx).Error("rows kept after their files were deleted",
			zap.Strings("files", current.all()), zap.Error(err))
		return persistenceError(err)
	}
	return nil
}

// writeAll stores the primary upload then the gallery uploads. On failure the files
// already written by this call are removed and nothing else is attempted.
func (m *Manager) writeAll(ctx context.Context, primary *Upload, gallery []Upload) (Files, error) {
	var files Files
	var written []string

	write := func(u Upload) (string, error) {
		name := m.names.Name(u.Filename)
		if err := m.put(ctx, name, u); err != nil {
			return "", err
		}
		written = append(written, name)
		return name, nil
	}

	fail := func(err error) (Files, error) {
		for _, name := range written {
			if derr := m.store.Delete(ctx, m.Key(name)); derr != nil {
				logger.FromContext(ctx).Warn("partial upload not removed",
					zap.String("key", m.Key(name)), zap.Error(derr))
			}
		}
		return Files{}, apperror.Storage(err)
	}

	if primary != nil {
		name, err := write(*primary)
		if err != nil {
			return fail(err)
		}
		files.Primary = name
	}
	if len(gallery) > 0 {
		files.Gallery = make([]string, 0, len(gallery))
		for _, u := range gallery {
			name, err := write(u)
			if err != nil {
				return fail(err)
			}
			files.Gallery = append(files.Gallery, name)
		}
	}
	return files, nil
}

func (m *Manager) put(ctx context.Context, name string, u Upload) error {
	f, err := u.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	return m.store.Put(ctx, m.Key(name), f, u.Size, u.ContentType)
}

func (m *Manager) logOrphans(ctx context.Context, op string, files Files, cause error) {
	names := files.all()
	if len(names) == 0 {
		return
	}
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = m.Key(n)
	}
	logger.FromContext(ctx).Warn("files written but rows not committed",
		zap.String("op", op), zap.Strings("keys", keys), zap.Error(cause))
}

func persistenceError(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Persistence(err)
}
