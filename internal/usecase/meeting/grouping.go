package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// GroupedItem is a meeting placed in a bucket, with its local date and time
type GroupedItem struct {
	entities.MeetingSummary
	Date string `json:"date"`
	Time string `json:"time"`
}

// GroupedMeetings is the response of the grouped view. Buckets are never nil.
type GroupedMeetings struct {
	Today     []GroupedItem `json:"today"`
	Tomorrow  []GroupedItem `json:"tomorrow"`
	Next7Days []GroupedItem `json:"next7days"`
}

func (g *GroupedMeetings) place(now time.Time, loc *time.Location, item GroupedItem) {
	switch offset := daysBetween(now, item.MeetingDate, loc); {
	case offset == 0:
		g.Today = append(g.Today, item)
	case offset == 1:
		g.Tomorrow = append(g.Tomorrow, item)
	case offset >= 2 && offset <= 8:
		g.Next7Days = append(g.Next7Days, item)
	}
}

func newGroupedItem(m entities.MeetingSummary, at time.Time, loc *time.Location) GroupedItem {
	m.MeetingDate = at
	local := at.In(loc)
	return GroupedItem{
		MeetingSummary: m,
		Date:           local.Format(dateLayout),
		Time:           local.Format(timeLayout),
	}
}

// GroupByDate buckets meetings by calendar day relative to now in loc:
// today, tomorrow, and two to eight days ahead. A planned follow-up is
// placed as a copy whose meeting date is the follow-up date, in addition
// to the meeting itself. Input order is kept within each bucket.
func GroupByDate(now time.Time, loc *time.Location, meetings []*entities.MeetingSummary) *GroupedMeetings {
	g := &GroupedMeetings{
		Today:     []GroupedItem{},
		Tomorrow:  []GroupedItem{},
		Next7Days: []GroupedItem{},
	}

	for _, m := range meetings {
		if m == nil {
			continue
		}
		g.place(now, loc, newGroupedItem(*m, m.MeetingDate, loc))

		if m.NextMeetingDate != nil {
			g.place(now, loc, newGroupedItem(*m, *m.NextMeetingDate, loc))
		}
	}

	return g
}
