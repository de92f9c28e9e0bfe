package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/internal/media"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/validator"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// DateTimeLayout is the accepted input format for dates ("Y/m/d H:i:s")
const DateTimeLayout = "2006/01/02 15:04:05"

type actorKey struct{}

// WithActor records the id of the authenticated user performing a write
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

func actor(ctx context.Context) string {
	if id, ok := ctx.Value(actorKey{}).(string); ok {
		return id
	}
	return "system"
}

// lookupError maps a repository read failure onto NotFound or Persistence
func lookupError(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(resource + " not found.")
	}
	return apperror.Persistence(err)
}

// check runs struct validation and returns an empty map when data is valid
func check(data interface{}) validator.Errors {
	if errs := validator.ValidateStruct(data); errs != nil {
		return errs
	}
	return validator.Errors{}
}

func failed(errs validator.Errors) error {
	if len(errs) == 0 {
		return nil
	}
	return apperror.Validation(errs)
}

// unique adds "has already been taken" when the field passed its own rules but collides
func unique(errs validator.Errors, field string, value string, exists func() (bool, error)) error {
	if value == "" || len(errs[field]) > 0 {
		return nil
	}
	taken, err := exists()
	if err != nil {
		return apperror.Persistence(err)
	}
	if taken {
		errs.Add(field, "The "+labelOf(field)+" has already been taken.")
	}
	return nil
}

// checkImage sniffs an uploaded image and records a message for field when it is rejected
func checkImage(errs validator.Errors, field string, u *attachment.Upload, maxKB int) {
	label := labelOf(field)
	err := attachment.Inspect(u, int64(maxKB)*1024)
	switch {
	case err == nil:
	case errors.Is(err, media.ErrFileTooLarge):
		errs.Add(field, "The "+label+" field must not be greater than "+strconv.Itoa(maxKB)+" kilobytes.")
	case errors.Is(err, media.ErrNotImage):
		errs.Add(field, "The "+label+" field must be an image.")
	default:
		errs.Add(field, "The "+label+" failed to upload.")
	}
}

func labelOf(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func parseID(raw string, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NotFound(resource + " not found.")
	}
	return id, nil
}

func parseDateTime(value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateTimeLayout, value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseBool(value string, fallback bool) bool {
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slugify lowercases s, strips accents and joins runs of letters and digits with "-"
func Slugify(s string) string {
	if plain, _, err := transform.String(stripMarks(), s); err == nil {
		s = plain
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
