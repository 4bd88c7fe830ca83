package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	attendanceModel "eusouninja_backend/internals/features/attendance/model"
	attendanceRepo "eusouninja_backend/internals/features/attendance/repository"
	studentRepo "eusouninja_backend/internals/features/students/repository"
	helper "eusouninja_backend/internals/helpers"
)

// DefaultWindowDays is the report window when the caller gives no bounds.
const DefaultWindowDays = 30

type ReportService struct {
	Attendance *attendanceRepo.AttendanceRepository
	Students   *studentRepo.StudentRepository
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		Attendance: attendanceRepo.NewAttendanceRepository(db),
		Students:   studentRepo.NewStudentRepository(db),
	}
}

/* =========================================================
   Per-student frequency
========================================================= */

type MonthBucket struct {
	Month   string  `json:"month"`
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Rate    float64 `json:"rate"`
}

type HistoryEntry struct {
	ClassDate string  `json:"class_date"`
	Present   bool    `json:"present"`
	Notes     *string `json:"notes,omitempty"`
}

type StudentFrequencyReport struct {
	StudentID   string               `json:"student_id"`
	StudentName string               `json:"student_name"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Stats       attendanceRepo.Stats `json:"stats"`
	Monthly     []MonthBucket        `json:"monthly"`
	History     []HistoryEntry       `json:"history"`
}

// StudentFrequency builds attendance totals and a per-month breakdown for
// one student. Missing bounds default to the last DefaultWindowDays days.
func (s *ReportService) StudentFrequency(ctx context.Context, studentID string, startDate, endDate *time.Time) (*StudentFrequencyReport, error) {
	student, err := s.Students.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, nil
	}

	end := time.Now().UTC()
	if endDate != nil {
		end = *endDate
	}
	start := end.AddDate(0, 0, -DefaultWindowDays)
	if startDate != nil {
		start = *startDate
	}

	rows, err := s.Attendance.GetByStudent(ctx, studentID, &start, &end)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryEntry, 0, len(rows))
	for _, row := range rows {
		history = append(history, HistoryEntry{
			ClassDate: helper.FormatDate(row.AttendanceClassDate),
			Present:   row.AttendancePresent,
			Notes:     row.AttendanceNotes,
		})
	}

	return &StudentFrequencyReport{
		StudentID:   student.StudentID,
		StudentName: student.StudentName,
		StartDate:   start.Format(helper.DateLayout),
		EndDate:     end.Format(helper.DateLayout),
		Stats:       attendanceRepo.ComputeStats(rows),
		Monthly:     MonthlyBreakdown(rows),
		History:     history,
	}, nil
}

// MonthlyBreakdown groups rows into "YYYY-MM" buckets, oldest first.
func MonthlyBreakdown(rows []attendanceModel.AttendanceModel) []MonthBucket {
	byMonth := map[string]*MonthBucket{}
	for _, row := range rows {
		key := time.Time(row.AttendanceClassDate).Format("2006-01")
		b, ok := byMonth[key]
		if !ok {
			b = &MonthBucket{Month: key}
			byMonth[key] = b
		}
		b.Total++
		if row.AttendancePresent {
			b.Present++
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthBucket, 0, len(keys))
	for _, k := range keys {
		b := byMonth[k]
		if b.Total > 0 {
			b.Rate = float64(b.Present) / float64(b.Total) * 100
		}
		out = append(out, *b)
	}
	return out
}

/* =========================================================
   General stats
========================================================= */

type AgeBuckets struct {
	Children int `json:"children"`
	Teens    int `json:"teens"`
	Adults   int `json:"adults"`
	Unknown  int `json:"unknown"`
}

type TopStudent struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	Present     int     `json:"present"`
	Total       int     `json:"total"`
	Rate        float64 `json:"rate"`
}

type GeneralStatsReport struct {
	TotalStudents   int                  `json:"total_students"`
	ActiveStudents  int                  `json:"active_students"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	Attendance      attendanceRepo.Stats `json:"attendance"`
	Ages            AgeBuckets           `json:"ages"`
	TopStudents     []TopStudent         `json:"top_students"`
	WeekdayPresence [7]int               `json:"weekday_presence"`
}

// GeneralStats summarizes the whole program over a window (default last
// DefaultWindowDays days): roster counts, age distribution, attendance
// totals, the five most frequent students and a Monday-first weekday chart.
func (s *ReportService) GeneralStats(ctx context.Context, startDate, endDate *time.Time) (*GeneralStatsReport, error) {
	end := time.Now().UTC()
	if endDate != nil {
		end = *endDate
	}
	start := end.AddDate(0, 0, -DefaultWindowDays)
	if startDate != nil {
		start = *startDate
	}

	students, err := s.Students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.Attendance.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &GeneralStatsReport{
		TotalStudents: len(students),
		StartDate:     start.Format(helper.DateLayout),
		EndDate:       end.Format(helper.DateLayout),
		Attendance:    attendanceRepo.ComputeStats(rows),
	}

	names := make(map[string]string, len(students))
	now := time.Now()
	for _, st := range students {
		names[st.StudentID] = st.StudentName
		if st.StudentIsActive {
			report.ActiveStudents++
		}
		birth := time.Time(st.StudentBirthDate)
		if birth.IsZero() {
			report.Ages.Unknown++
			continue
		}
		switch age := helper.AgeAt(birth, now); {
		case age <= 12:
			report.Ages.Children++
		case age <= 17:
			report.Ages.Teens++
		default:
			report.Ages.Adults++
		}
	}

	report.TopStudents = topStudents(rows, names, 5)
	report.WeekdayPresence = weekdayPresence(rows)
	return report, nil
}

func topStudents(rows []attendanceModel.AttendanceModel, names map[string]string, limit int) []TopStudent {
	perStudent := map[string]*TopStudent{}
	for _, row := range rows {
		t, ok := perStudent[row.AttendanceStudentID]
		if !ok {
			t = &TopStudent{
				StudentID:   row.AttendanceStudentID,
				StudentName: names[row.AttendanceStudentID],
			}
			perStudent[row.AttendanceStudentID] = t
		}
		t.Total++
		if row.AttendancePresent {
			t.Present++
		}
	}

	out := make([]TopStudent, 0, len(perStudent))
	for _, t := range perStudent {
		if t.Total > 0 {
			t.Rate = float64(t.Present) / float64(t.Total) * 100
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rate != out[j].Rate {
			return out[i].Rate > out[j].Rate
		}
		if out[i].Present != out[j].Present {
			return out[i].Present > out[j].Present
		}
		return out[i].StudentName < out[j].StudentName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// weekdayPresence counts present marks per weekday, index 0 = Monday.
func weekdayPresence(rows []attendanceModel.AttendanceModel) [7]int {
	var chart [7]int
	for _, row := range rows {
		if !row.AttendancePresent {
			continue
		}
		wd := time.Time(row.AttendanceClassDate).Weekday()
		chart[(int(wd)+6)%7]++
	}
	return chart
}
