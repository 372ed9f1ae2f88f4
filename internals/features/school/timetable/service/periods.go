// file: internals/features/school/timetable/service/periods.go
package service

// Period is one row of the fixed daily bell schedule.
type Period struct {
	PeriodNo  int    `json:"period_no"` // >= 1
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
	IsBreak   bool   `json:"is_break"`
	Label     string `json:"label"`
}

// DefaultPeriods returns the seven teaching periods of a school day.
// The 12:30-13:00 lunch break sits between periods 5 and 6; it is not
// a schedulable slot, so it has no catalog row.
func DefaultPeriods() []Period {
	return []Period{
		{PeriodNo: 1, StartTime: "08:00", EndTime: "08:45", Label: "Period 1"},
		{PeriodNo: 2, StartTime: "08:46", EndTime: "09:30", Label: "Period 2"},
		{PeriodNo: 3, StartTime: "09:31", EndTime: "10:15", Label: "Period 3"},
		{PeriodNo: 4, StartTime: "10:16", EndTime: "10:45", Label: "Period 4"},
		{PeriodNo: 5, StartTime: "10:46", EndTime: "11:30", Label: "Period 5"},
		{PeriodNo: 6, StartTime: "13:01", EndTime: "13:45", Label: "Period 6"},
		{PeriodNo: 7, StartTime: "13:46", EndTime: "14:30", Label: "Period 7"},
	}
}

// PeriodByNo looks up a catalog row by number.
func PeriodByNo(no int) (Period, bool) {
	for _, p := range DefaultPeriods() {
		if p.PeriodNo == no {
			return p, true
		}
	}
	return Period{}, false
}
