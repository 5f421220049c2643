// Package station holds the descriptive content for the nine classification
// outcomes. It is pure data, attached to a classification result for
// presentation; the scoring engine never reads it.
package station

// Category is one of the three ordered groups of three stations each.
type Category string

const (
	CategoryDhalim   Category = "dhalim"
	CategoryMuqtasid Category = "muqtasid"
	CategorySabiq    Category = "sabiq"
)

// Name returns the transliterated display name of the category.
func (c Category) Name() string {
	switch c {
	case CategoryDhalim:
		return "Ẓālim li-Nafsihi"
	case CategoryMuqtasid:
		return "Muqtaṣid"
	case CategorySabiq:
		return "Sābiq bil-Khayrāt"
	}
	return string(c)
}

// Native returns the category name in Arabic script.
func (c Category) Native() string {
	switch c {
	case CategoryDhalim:
		return "ظالم لنفسه"
	case CategoryMuqtasid:
		return "مقتصد"
	case CategorySabiq:
		return "سابق بالخيرات"
	}
	return ""
}

type Station struct {
	ID           int
	Name         string
	Native       string
	Category     Category
	Color        string // hex, used for the result card accent
	Figure       string
	FigureStory  string
	CurrentState string
	GoodNews     []string
	Steps        []string
	Warning      string
}

// Get returns the descriptor for a station id in [1,9].
func Get(id int) (Station, bool) {
	if id < 1 || id > len(stations) {
		return Station{}, false
	}
	return stations[id-1], true
}

// All returns the nine stations in ascending order.
func All() []Station {
	out := make([]Station, len(stations))
	copy(out, stations)
	return out
}
