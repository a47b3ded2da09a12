package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/notify"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
)

// ── mock user repo ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
		if user.CardID != nil && u.CardID != nil && *u.CardID == *user.CardID {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetActiveByCardID(_ context.Context, cardID string) (*model.User, error) {
	for _, u := range m.users {
		if u.IsActive && u.CardID != nil && *u.CardID == cardID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.UserID == user.UserID {
			continue
		}
		if user.CardID != nil && u.CardID != nil && *u.CardID == *user.CardID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, role string, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		if role == "" || u.Role == role {
			all = append(all, *u)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) ListActiveByRoles(_ context.Context, roles []string) ([]model.User, error) {
	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}
	var result []model.User
	for _, u := range m.users {
		if u.IsActive && roleSet[u.Role] {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}

// ── mock attendance repo ──

type mockAttendanceRepo struct {
	logs map[string]*model.AttendanceLog // key: "user_id:YYYY-MM-DD"
	seq  int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{logs: make(map[string]*model.AttendanceLog)}
}

func attendanceKey(userID string, day time.Time) string {
	return userID + ":" + day.Format("2006-01-02")
}

func (m *mockAttendanceRepo) Create(_ context.Context, log *model.AttendanceLog) error {
	key := attendanceKey(log.UserID, log.Date)
	if _, ok := m.logs[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if log.AttendanceID == "" {
		m.seq++
		log.AttendanceID = fmt.Sprintf("att-%d", m.seq)
	}
	m.logs[key] = log
	return nil
}

func (m *mockAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, day time.Time) (*model.AttendanceLog, error) {
	if log, ok := m.logs[attendanceKey(userID, day)]; ok {
		return log, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Update(_ context.Context, log *model.AttendanceLog) error {
	m.logs[attendanceKey(log.UserID, log.Date)] = log
	return nil
}

func (m *mockAttendanceRepo) ListByDate(_ context.Context, day time.Time) ([]model.AttendanceLog, error) {
	want := day.Format("2006-01-02")
	var result []model.AttendanceLog
	for _, log := range m.logs {
		if log.Date.Format("2006-01-02") == want {
			result = append(result, *log)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByRange(_ context.Context, start, end time.Time) ([]model.AttendanceLog, error) {
	var result []model.AttendanceLog
	for _, log := range m.logs {
		if !log.Date.Before(start) && log.Date.Before(end) {
			result = append(result, *log)
		}
	}
	return result, nil
}

// ── mock absence repo ──

type mockAbsenceRepo struct {
	absences map[string]*model.Absence // key: "user_id:YYYY-MM-DD"
	seq      int
}

func newMockAbsenceRepo() *mockAbsenceRepo {
	return &mockAbsenceRepo{absences: make(map[string]*model.Absence)}
}

func (m *mockAbsenceRepo) Create(_ context.Context, absence *model.Absence) error {
	key := attendanceKey(absence.UserID, absence.Date)
	if _, ok := m.absences[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if absence.AbsenceID == "" {
		m.seq++
		absence.AbsenceID = fmt.Sprintf("abs-%d", m.seq)
	}
	m.absences[key] = absence
	return nil
}

func (m *mockAbsenceRepo) GetByUserAndDate(_ context.Context, userID string, day time.Time) (*model.Absence, error) {
	if a, ok := m.absences[attendanceKey(userID, day)]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAbsenceRepo) Update(_ context.Context, absence *model.Absence) error {
	m.absences[attendanceKey(absence.UserID, absence.Date)] = absence
	return nil
}

func (m *mockAbsenceRepo) ListByDate(_ context.Context, day time.Time) ([]model.Absence, error) {
	want := day.Format("2006-01-02")
	var result []model.Absence
	for _, a := range m.absences {
		if a.Date.Format("2006-01-02") == want {
			result = append(result, *a)
		}
	}
	return result, nil
}

// ── mock card scan repo ──

type mockCardScanRepo struct {
	scans []*model.CardScan
	seq   int
}

func newMockCardScanRepo() *mockCardScanRepo {
	return &mockCardScanRepo{}
}

func (m *mockCardScanRepo) Create(_ context.Context, scan *model.CardScan) error {
	m.seq++
	scan.ScanID = fmt.Sprintf("scan-%d", m.seq)
	m.scans = append(m.scans, scan)
	return nil
}

func (m *mockCardScanRepo) ListRecent(_ context.Context, limit int) ([]model.CardScan, error) {
	var result []model.CardScan
	for i := len(m.scans) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, *m.scans[i])
	}
	return result, nil
}

// ── mock schedule repo ──

type mockScheduleRepo struct {
	schedules map[string]*model.TeacherSchedule
	seq       int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[string]*model.TeacherSchedule)}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.TeacherSchedule) error {
	for _, sc := range m.schedules {
		if sc.IsActive && schedule.IsActive &&
			sc.TeacherID == schedule.TeacherID && sc.DayOfWeek == schedule.DayOfWeek {
			return gorm.ErrDuplicatedKey
		}
	}
	if schedule.ScheduleID == "" {
		m.seq++
		schedule.ScheduleID = fmt.Sprintf("sched-%d", m.seq)
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.TeacherSchedule, error) {
	if sc, ok := m.schedules[id]; ok {
		cp := *sc
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) GetActiveByTeacherAndDay(_ context.Context, teacherID string, dayOfWeek int) (*model.TeacherSchedule, error) {
	for _, sc := range m.schedules {
		if sc.IsActive && sc.TeacherID == teacherID && sc.DayOfWeek == dayOfWeek {
			return sc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.TeacherSchedule) error {
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

func (m *mockScheduleRepo) List(_ context.Context, teacherID string) ([]model.TeacherSchedule, error) {
	var result []model.TeacherSchedule
	for _, sc := range m.schedules {
		if teacherID == "" || sc.TeacherID == teacherID {
			result = append(result, *sc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScheduleID < result[j].ScheduleID })
	return result, nil
}

// ── mock subject repo ──

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
	seq      int
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	for _, sub := range m.subjects {
		if sub.Code == subject.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	if subject.SubjectID == "" {
		m.seq++
		subject.SubjectID = fmt.Sprintf("subj-%d", m.seq)
	}
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if sub, ok := m.subjects[id]; ok {
		return sub, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	for _, sub := range m.subjects {
		if sub.SubjectID != subject.SubjectID && sub.Code == subject.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id string) error {
	delete(m.subjects, id)
	return nil
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	var result []model.Subject
	for _, sub := range m.subjects {
		result = append(result, *sub)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

// ── mock notification repo ──

type mockNotificationRepo struct {
	notifications []*model.Notification
	seq           int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) CreateBatch(_ context.Context, notifications []model.Notification) error {
	for i := range notifications {
		m.seq++
		n := notifications[i]
		n.NotificationID = fmt.Sprintf("notif-%d", m.seq)
		m.notifications = append(m.notifications, &n)
	}
	return nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool, offset, limit int) ([]model.Notification, int64, error) {
	var all []model.Notification
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		all = append(all, *n)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	for _, n := range m.notifications {
		if n.NotificationID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// ── mock post repo ──

type mockPostRepo struct {
	posts []*model.LearningPost
	seq   int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{}
}

func (m *mockPostRepo) Create(_ context.Context, post *model.LearningPost) error {
	m.seq++
	post.PostID = fmt.Sprintf("post-%d", m.seq)
	m.posts = append(m.posts, post)
	return nil
}

func (m *mockPostRepo) List(_ context.Context, offset, limit int) ([]model.LearningPost, int64, error) {
	total := int64(len(m.posts))
	var result []model.LearningPost
	for i := len(m.posts) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, *m.posts[i])
	}
	return result, total, nil
}

// ── recording notifier ──

type mockNotifier struct {
	events []notify.Event
}

func (m *mockNotifier) Dispatch(_ context.Context, events []notify.Event) {
	m.events = append(m.events, events...)
}

// ── wiring helpers ──

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:         newMockUserRepo(),
		Attendance:   newMockAttendanceRepo(),
		Absence:      newMockAbsenceRepo(),
		CardScan:     newMockCardScanRepo(),
		Schedule:     newMockScheduleRepo(),
		Subject:      newMockSubjectRepo(),
		Notification: newMockNotificationRepo(),
		Post:         newMockPostRepo(),
	}
}

func seedUser(repo *repository.Repository, id, name, role string, cardID *string) *model.User {
	user := &model.User{
		UserID:   id,
		Name:     name,
		Username: id,
		Email:    id + "@sekolah.test",
		Role:     role,
		CardID:   cardID,
		IsActive: true,
	}
	repo.User.(*mockUserRepo).users[id] = user
	return user
}
