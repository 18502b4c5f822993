package catalog

// Record is the filterable subset shared by every catalog shape.
type Record interface {
	RecordID() int
	RecordCategory() Category
	RecordPrice() float64
	RecordRating() float64
	Title() string
	Place() string
}

type Destination struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Location    string   `yaml:"location"`
	Rating      float64  `yaml:"rating"`
	Category    Category `yaml:"category"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
}

func (d Destination) RecordID() int            { return d.ID }
func (d Destination) RecordCategory() Category { return d.Category }
func (d Destination) RecordPrice() float64     { return d.Price }
func (d Destination) RecordRating() float64    { return d.Rating }
func (d Destination) Title() string            { return d.Name }
func (d Destination) Place() string            { return d.Location }

type Lodge struct {
	ID                  int      `yaml:"id"`
	Name                string   `yaml:"name"`
	Location            string   `yaml:"location"`
	Rating              float64  `yaml:"rating"`
	Category            Category `yaml:"category"`
	Image               string   `yaml:"image"`
	Description         string   `yaml:"description"`
	Price               float64  `yaml:"price"`
	ExtendedDescription string   `yaml:"extended_description,omitempty"`
	Amenities           []string `yaml:"amenities,omitempty"`
	Highlights          []string `yaml:"highlights,omitempty"`
}

func (l Lodge) RecordID() int            { return l.ID }
func (l Lodge) RecordCategory() Category { return l.Category }
func (l Lodge) RecordPrice() float64     { return l.Price }
func (l Lodge) RecordRating() float64    { return l.Rating }
func (l Lodge) Title() string            { return l.Name }
func (l Lodge) Place() string            { return l.Location }
