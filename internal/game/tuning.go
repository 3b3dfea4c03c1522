package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CategorySpec holds the size range and score of one piece category.
type CategorySpec struct {
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
	Score   int `yaml:"score"`
}

// CarSpec holds the fill capacity of one car type.
type CarSpec struct {
	Capacity float64 `yaml:"capacity"`
}

// PieceTable maps every category to its spec.
type PieceTable struct {
	Small  CategorySpec `yaml:"small"`
	Medium CategorySpec `yaml:"medium"`
	Large  CategorySpec `yaml:"large"`
}

// CarTable maps every car type to its spec.
type CarTable struct {
	Sedan   CarSpec `yaml:"sedan"`
	Minivan CarSpec `yaml:"minivan"`
	SUV     CarSpec `yaml:"suv"`
}

// Tuning is the set of per-category and per-car constants a session runs with.
type Tuning struct {
	Pieces PieceTable `yaml:"pieces"`
	Cars   CarTable   `yaml:"cars"`
}

// DefaultTuning returns the stock piece and car tables.
func DefaultTuning() Tuning {
	return Tuning{
		Pieces: PieceTable{
			Small:  CategorySpec{MinSize: 2, MaxSize: 4, Score: 10},
			Medium: CategorySpec{MinSize: 4, MaxSize: 6, Score: 20},
			Large:  CategorySpec{MinSize: 6, MaxSize: 8, Score: 30},
		},
		Cars: CarTable{
			Sedan:   CarSpec{Capacity: 50},
			Minivan: CarSpec{Capacity: 70},
			SUV:     CarSpec{Capacity: 60},
		},
	}
}

// LoadTuning reads a YAML tuning file over the defaults. An empty path
// returns DefaultTuning.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// Category returns the spec for c.
func (t Tuning) Category(c Category) CategorySpec {
	switch c {
	case Small:
		return t.Pieces.Small
	case Medium:
		return t.Pieces.Medium
	case Large:
		return t.Pieces.Large
	default:
		panic(fmt.Sprintf("game: unknown category %d", int(c)))
	}
}

// Car returns the spec for c.
func (t Tuning) Car(c CarType) CarSpec {
	switch c {
	case Sedan:
		return t.Cars.Sedan
	case Minivan:
		return t.Cars.Minivan
	case SUV:
		return t.Cars.SUV
	default:
		panic(fmt.Sprintf("game: unknown car type %d", int(c)))
	}
}

// NewContainer builds an empty container for the given car.
func (t Tuning) NewContainer(car CarType) *Container {
	return NewContainer(car, t.Car(car).Capacity)
}

// Validate checks that every spec can produce a playable piece or container.
func (t Tuning) Validate() error {
	var errs []error
	for _, c := range Categories {
		spec := t.Category(c)
		switch {
		case spec.MinSize <= 0:
			errs = append(errs, fmt.Errorf("%s: min_size must be positive, got %d", c, spec.MinSize))
		case spec.MaxSize < spec.MinSize:
			errs = append(errs, fmt.Errorf("%s: max_size %d is below min_size %d", c, spec.MaxSize, spec.MinSize))
		case spec.MaxSize*PieceWidthScale > BoardWidth:
			errs = append(errs, fmt.Errorf("%s: max_size %d is wider than the board", c, spec.MaxSize))
		}
		if spec.Score < 0 {
			errs = append(errs, fmt.Errorf("%s: score must not be negative, got %d", c, spec.Score))
		}
	}
	for _, car := range CarTypes {
		if capacity := t.Car(car).Capacity; capacity <= 0 {
			errs = append(errs, fmt.Errorf("%s: capacity must be positive, got %g", car, capacity))
		}
	}
	return errors.Join(errs...)
}
