package game

// Category determines a piece's size range and score value.
type Category int

const (
	Small Category = iota
	Medium
	Large
)

// Categories lists every category in draw order.
var Categories = [...]Category{Small, Medium, Large}

func (c Category) String() string {
	switch c {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// CarType selects the container a session is played in.
type CarType int

const (
	Sedan CarType = iota
	Minivan
	SUV
)

// CarTypes lists every car in menu order.
var CarTypes = [...]CarType{Sedan, Minivan, SUV}

func (c CarType) String() string {
	switch c {
	case Sedan:
		return "sedan"
	case Minivan:
		return "minivan"
	case SUV:
		return "suv"
	default:
		return "unknown"
	}
}
