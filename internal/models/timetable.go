package models

import "sort"

// Tier identifies one of the two school levels sharing the teacher pool.
type Tier string

const (
	TierMTs Tier = "MTs"
	TierMA  Tier = "MA"
)

// Valid reports whether the tier is one of the two known levels.
func (t Tier) Valid() bool {
	return t == TierMTs || t == TierMA
}

// ClassLevel addresses one of the three parallel grade cohorts in a row.
type ClassLevel string

const (
	ClassLevelA ClassLevel = "A"
	ClassLevelB ClassLevel = "B"
	ClassLevelC ClassLevel = "C"
)

// ClassLevels lists the cohorts in display order.
var ClassLevels = []ClassLevel{ClassLevelA, ClassLevelB, ClassLevelC}

// Valid reports whether the level is A, B or C.
func (l ClassLevel) Valid() bool {
	return l == ClassLevelA || l == ClassLevelB || l == ClassLevelC
}

// Label returns the grade name for the level within a tier
// (Kelas 7/8/9 for MTs, Kelas 10/11/12 for MA).
func (l ClassLevel) Label(tier Tier) string {
	labels := map[ClassLevel]string{
		ClassLevelA: "Kelas 7",
		ClassLevelB: "Kelas 8",
		ClassLevelC: "Kelas 9",
	}
	if tier == TierMA {
		labels = map[ClassLevel]string{
			ClassLevelA: "Kelas 10",
			ClassLevelB: "Kelas 11",
			ClassLevelC: "Kelas 12",
		}
	}
	return labels[l]
}

// NoTeacher is the sentinel code meaning no teacher is assigned to a slot.
const NoTeacher = "-"

// PeriodSlot is one cohort's assignment within a time-slot row.
type PeriodSlot struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
}

// TimeSlotRow is one row of a day's schedule: a free-form time label and the
// three parallel cohort slots.
type TimeSlotRow struct {
	Time  string     `json:"time"`
	SlotA PeriodSlot `json:"slotA"`
	SlotB PeriodSlot `json:"slotB"`
	SlotC PeriodSlot `json:"slotC"`
}

// Slot returns a pointer to the period slot for the given class level.
func (r *TimeSlotRow) Slot(level ClassLevel) *PeriodSlot {
	switch level {
	case ClassLevelA:
		return &r.SlotA
	case ClassLevelB:
		return &r.SlotB
	case ClassLevelC:
		return &r.SlotC
	}
	return nil
}

// EmptyRow builds a row for the given time with all slots unassigned.
func EmptyRow(time string) TimeSlotRow {
	empty := PeriodSlot{Subject: "", Teacher: NoTeacher}
	return TimeSlotRow{Time: time, SlotA: empty, SlotB: empty, SlotC: empty}
}

// DaySchedule is a day's ordered list of rows, kept sorted by time label.
type DaySchedule []TimeSlotRow

// Timetable maps day name to that day's schedule. One instance exists per tier.
type Timetable map[string]DaySchedule

// Clone returns a deep copy so hypothetical edits never leak into live state.
func (t Timetable) Clone() Timetable {
	if t == nil {
		return nil
	}
	out := make(Timetable, len(t))
	for day, rows := range t {
		copied := make(DaySchedule, len(rows))
		copy(copied, rows)
		out[day] = copied
	}
	return out
}

// weekdayOrder is the canonical Indonesian school week.
var weekdayOrder = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jum'at", "Sabtu", "Minggu"}

func weekdayIndex(day string) int {
	for i, name := range weekdayOrder {
		if name == day {
			return i
		}
	}
	return -1
}

// SortedDays returns the timetable's day names in canonical weekday order.
// Unrecognized names sort after all recognized ones, alphabetically among
// themselves.
func (t Timetable) SortedDays() []string {
	days := make([]string, 0, len(t))
	for day := range t {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		a, b := weekdayIndex(days[i]), weekdayIndex(days[j])
		if a == -1 && b == -1 {
			return days[i] < days[j]
		}
		if a == -1 {
			return false
		}
		if b == -1 {
			return true
		}
		return a < b
	})
	return days
}

// SortRows orders a day's rows by their time label.
func SortRows(rows DaySchedule) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Time < rows[j].Time })
}

// FindRow returns the index of the row with the given time label, or -1.
func FindRow(rows DaySchedule, time string) int {
	for i := range rows {
		if rows[i].Time == time {
			return i
		}
	}
	return -1
}
