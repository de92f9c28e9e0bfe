package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPerPage is the page size of every listing
const DefaultPerPage = 5

// Page selects one page of a listing. Number is 1-based.
type Page struct {
	Number  int
	PerPage int
}

// NewPage clamps number to the first page and applies the default size
func NewPage(number int) Page {
	if number < 1 {
		number = 1
	}
	return Page{Number: number, PerPage: DefaultPerPage}
}

func (p Page) offset() int {
	return (p.Number - 1) * p.PerPage
}

// Paginated is one page of T plus the total row count
type Paginated[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

// LastPage is at least 1, even for an empty listing
func (p Paginated[T]) LastPage() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// From is the 1-based position of the first item, 0 when the page is empty
func (p Paginated[T]) From() int {
	if len(p.Items) == 0 {
		return 0
	}
	return (p.Page-1)*p.PerPage + 1
}

// To is the position of the last item, 0 when the page is empty
func (p Paginated[T]) To() int {
	if len(p.Items) == 0 {
		return 0
	}
	return p.From() + len(p.Items) - 1
}

// Map converts the items of a page, keeping the counters
func Map[T, R any](p Paginated[T], fn func(*T) R) Paginated[R] {
	out := Paginated[R]{Items: make([]R, len(p.Items)), Total: p.Total, Page: p.Page, PerPage: p.PerPage}
	for i := range p.Items {
		out.Items[i] = fn(&p.Items[i])
	}
	return out
}

// paginate lists newest rows first
func paginate[T any](db *gorm.DB, page Page, preloads ...string) (Paginated[T], error) {
	if page.PerPage <= 0 {
		page = NewPage(page.Number)
	}
	out := Paginated[T]{Page: page.Number, PerPage: page.PerPage}

	if err := db.Model(new(T)).Count(&out.Total).Error; err != nil {
		return out, err
	}

	q := db.Order("created_at DESC")
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Offset(page.offset()).Limit(page.PerPage).Find(&out.Items).Error; err != nil {
		return out, err
	}
	return out, nil
}

// crud holds the operations shared by the uuid keyed resources
type crud[T any] struct {
	db       *gorm.DB
	preloads []string
}

func (r crud[T]) with(tx *gorm.DB) crud[T] {
	return crud[T]{db: tx, preloads: r.preloads}
}

func (r crud[T]) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r crud[T]) Create(ctx context.Context, v *T) error {
	return r.conn(ctx).Omit(clause.Associations).Create(v).Error
}

func (r crud[T]) Update(ctx context.Context, v *T) error {
	return r.conn(ctx).Omit(clause.Associations).Save(v).Error
}

// Delete removes the row and reports gorm.ErrRecordNotFound when nothing matched
func (r crud[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r crud[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var v T
	q := r.conn(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	if err := q.First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r crud[T]) List(ctx context.Context, page Page) (Paginated[T], error) {
	return paginate[T](r.conn(ctx), page, r.preloads...)
}

// exists reports whether another row (not except) has column = value
func (r crud[T]) exists(ctx context.Context, column string, value interface{}, except uuid.UUID) (bool, error) {
	var count int64
	q := r.conn(ctx).Model(new(T)).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
