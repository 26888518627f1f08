package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/aliskhannn/quran-dataset-check/internal/domain/entities"
)

var (
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrMalformedDataset = errors.New("malformed dataset")
)

// MalformedError describes a dataset that exists but could not be read or decoded.
type MalformedError struct {
	Err error // underlying read or decode error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedDataset, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedDataset) hold for every MalformedError.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedDataset
}

func malformed(err error) error {
	return &MalformedError{Err: err}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DatasetRepository provides read access to the Quran JSON dataset at a single path.
type DatasetRepository struct {
	path string
}

// NewDatasetRepository creates a new DatasetRepository for the given file.
func NewDatasetRepository(path string) *DatasetRepository {
	return &DatasetRepository{path: path}
}

// Path returns the file the repository reads.
func (r *DatasetRepository) Path() string {
	return r.path
}

// GetAll reads and parses the whole dataset.
// It returns ErrDatasetNotFound when the path does not exist and ErrMalformedDataset
// when the file cannot be read or is not a JSON array of objects.
func (r *DatasetRepository) GetAll(ctx context.Context) ([]entities.Surah, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(r.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, r.path)
		}
		return nil, malformed(err)
	}

	// Reading a directory fails here and is reported as malformed.
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, malformed(err)
	}

	return decodeSurahs(data)
}

func decodeSurahs(data []byte) ([]entities.Surah, error) {
	// Plain UTF-8 only: no BOM, no invalid sequences.
	if bytes.HasPrefix(data, utf8BOM) {
		return nil, malformed(errors.New("unexpected UTF-8 BOM at start of file"))
	}
	if offset := invalidUTF8Offset(data); offset >= 0 {
		return nil, malformed(fmt.Errorf("invalid UTF-8 byte 0x%02x at offset %d", data[offset], offset))
	}

	var surahs []entities.Surah
	if err := json.Unmarshal(data, &surahs); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return nil, malformed(err)
		}
		return nil, fmt.Errorf("unmarshal surahs: %w", err)
	}

	// A literal null decodes into a nil slice without error.
	if surahs == nil {
		return nil, malformed(errors.New("top-level value is null, expected an array"))
	}

	for i, s := range surahs {
		if s == nil {
			return nil, malformed(fmt.Errorf("element %d is null, expected an object", i))
		}
	}

	return surahs, nil
}

// invalidUTF8Offset returns the offset of the first byte that is not valid UTF-8, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}

	return -1
}
