package media

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotImage     = errors.New("file is not an image")
	ErrFileTooLarge = errors.New("file is too large")
)

// Namer hands out "<unix microseconds>-<original name>" storage names.
// Timestamps are strictly increasing, so two uploads of the same file never collide.
type Namer struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewNamer(now func() time.Time) *Namer {
	if now == nil {
		now = time.Now
	}
	return &Namer{now: now}
}

func (n *Namer) Name(original string) string {
	n.mu.Lock()
	ts := n.now().UnixMicro()
	if ts <= n.last {
		ts = n.last + 1
	}
	n.last = ts
	n.mu.Unlock()
	return StorageName(ts, original)
}

// StorageName joins a microsecond timestamp and the client supplied file name.
// The name is not sanitized; stores reject keys that escape their root.
func StorageName(micros int64, original string) string {
	return strconv.FormatInt(micros, 10) + "-" + original
}

// OriginalName strips the timestamp prefix added by StorageName
func OriginalName(storageName string) string {
	if i := strings.IndexByte(storageName, '-'); i >= 0 {
		if _, err := strconv.ParseInt(storageName[:i], 10, 64); err == nil {
			return storageName[i+1:]
		}
	}
	return storageName
}

// DetectImage sniffs the content of r and fails unless it is an image no larger than maxBytes
func DetectImage(r io.Reader, size, maxBytes int64) (string, error) {
	if maxBytes > 0 && size > maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, size)
	}
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return mtype.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotImage, mtype.String())
}
