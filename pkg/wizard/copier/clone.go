package copier

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// clone returns a deep copy of src that shares no memory with it.
func clone[T any](src *T) (*T, error) {
	if src == nil {
		return nil, nil
	}
	dst := new(T)
	if err := deepcopy.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("copy %T: %w", src, err)
	}
	return dst, nil
}

// CloneFont returns an independent copy of a font.
func CloneFont(f *models.Font) (*models.Font, error) { return clone(f) }

// CloneAlignment returns an independent copy of an alignment.
func CloneAlignment(a *models.Alignment) (*models.Alignment, error) { return clone(a) }

// CloneFill returns an independent copy of a fill.
func CloneFill(f *models.Fill) (*models.Fill, error) { return clone(f) }

// CloneProtection returns an independent copy of a protection setting.
func CloneProtection(p *models.Protection) (*models.Protection, error) { return clone(p) }

// CloneBorders returns an independent copy of a border list.
func CloneBorders(b []models.Border) ([]models.Border, error) {
	if b == nil {
		return nil, nil
	}
	var out []models.Border
	if err := deepcopy.Copy(&out, &b); err != nil {
		return nil, fmt.Errorf("copy borders: %w", err)
	}
	return out, nil
}

// CloneFormat copies every attribute of a format through its own clone
// constructor.
func CloneFormat(f models.Format) (models.Format, error) {
	var (
		out models.Format
		err error
	)
	if out.Font, err = CloneFont(f.Font); err != nil {
		return models.Format{}, err
	}
	if out.Border, err = CloneBorders(f.Border); err != nil {
		return models.Format{}, err
	}
	if out.Alignment, err = CloneAlignment(f.Alignment); err != nil {
		return models.Format{}, err
	}
	if out.Fill, err = CloneFill(f.Fill); err != nil {
		return models.Format{}, err
	}
	if out.Protection, err = CloneProtection(f.Protection); err != nil {
		return models.Format{}, err
	}
	out.NumberFormat = f.NumberFormat
	return out, nil
}
