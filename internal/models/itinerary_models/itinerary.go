package itinerary_models

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// SchemaVersion tags persisted snapshots; loaders discard anything else.
	SchemaVersion = 1

	// DefaultDayCount is how many days a fresh itinerary starts with.
	DefaultDayCount = 3

	ActivityTypeAttraction = "attraction"
)

// Activity is one scheduled item inside a day. Everything but Time is fixed
// at creation; Time is a free-form clock label the user edits later.
type Activity struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              string `json:"price"`
	Time               string `json:"time"`
	Type               string `json:"type"`
	SourceAttractionID string `json:"source_attraction_id"`
}

// Day owns its activities; insertion order is the schedule order.
type Day struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

type Itinerary struct {
	Version int   `json:"version"`
	Days    []Day `json:"days"`
}

func NewItinerary() *Itinerary {
	return &Itinerary{Version: SchemaVersion, Days: []Day{}}
}

func NewDay(position int) Day {
	return Day{
		ID:         "day-" + uuid.NewString(),
		Title:      DayTitle(position),
		Activities: []Activity{},
	}
}

// DayTitle derives the display label from a 1-based position. Titles are
// never stored independently of position; Renumber keeps them in sync.
func DayTitle(position int) string {
	return fmt.Sprintf("Day %d", position)
}

// EnsureDefaultDays populates an empty itinerary with the default day count.
func (it *Itinerary) EnsureDefaultDays() {
	if len(it.Days) > 0 {
		return
	}
	for i := 1; i <= DefaultDayCount; i++ {
		it.Days = append(it.Days, NewDay(i))
	}
}

// Renumber rewrites every day title to match its current position.
func (it *Itinerary) Renumber() {
	for i := range it.Days {
		it.Days[i].Title = DayTitle(i + 1)
	}
}

func (it *Itinerary) DayByID(dayID string) *Day {
	for i := range it.Days {
		if it.Days[i].ID == dayID {
			return &it.Days[i]
		}
	}
	return nil
}

// OwnerOf returns the day holding the activity and its index there, or
// (nil, -1). At most one day can own an activity.
func (it *Itinerary) OwnerOf(activityID string) (*Day, int) {
	for i := range it.Days {
		for j := range it.Days[i].Activities {
			if it.Days[i].Activities[j].ID == activityID {
				return &it.Days[i], j
			}
		}
	}
	return nil, -1
}

// Clone returns a deep copy safe to hand out without holding the store lock.
func (it *Itinerary) Clone() *Itinerary {
	out := &Itinerary{Version: it.Version, Days: make([]Day, len(it.Days))}
	for i, d := range it.Days {
		nd := d
		nd.Activities = make([]Activity, len(d.Activities))
		copy(nd.Activities, d.Activities)
		out.Days[i] = nd
	}
	return out
}
