package storage

import (
	"path/filepath"
	"testing"

	"telecare-backend/internal/config"
	"telecare-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func seedDoctor(t *testing.T, db *gorm.DB, email string) *models.Doctor {
	t.Helper()
	d := &models.Doctor{Name: "Ana", Surname: "Lopez", Email: email, PasswordHash: "hash", Phone: "600111222"}
	require.NoError(t, CreateDoctor(db, d))
	return d
}

func seedPatient(t *testing.T, db *gorm.DB, email string, doctorID uint) *models.Patient {
	t.Helper()
	p := &models.Patient{
		Name: "Luis", Surname: "Marin", Email: email, PasswordHash: "hash",
		DOB: "1990-04-01", Sex: models.SexMale, Phone: "600333444", DoctorID: doctorID,
	}
	require.NoError(t, CreatePatient(db, p))
	return p
}

func TestCreateDoctorDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedDoctor(t, db, "a@x.com")

	err := CreateDoctor(db, &models.Doctor{Name: "B", Surname: "C", Email: "a@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreatePatientDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	d := seedDoctor(t, db, "a@x.com")
	seedPatient(t, db, "p@x.com", d.ID)

	err := CreatePatient(db, &models.Patient{
		Name: "Q", Surname: "R", Email: "p@x.com", PasswordHash: "h", DoctorID: d.ID,
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestValidateLoginMatchesOnlyExactHash(t *testing.T) {
	db := newTestDB(t)
	d := seedDoctor(t, db, "doc@x.com")

	got, err := ValidateDoctorLogin(db, "doc@x.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)

	_, err = ValidateDoctorLogin(db, "doc@x.com", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ValidateDoctorLogin(db, "nobody@x.com", "hash")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidatePatientLoginLoadsDoctor(t *testing.T) {
	db := newTestDB(t)
	d := seedDoctor(t, db, "doc@x.com")
	seedPatient(t, db, "p@x.com", d.ID)

	p, err := ValidatePatientLogin(db, "p@x.com", "hash")
	require.NoError(t, err)
	require.NotNil(t, p.Doctor)
	assert.Equal(t, "doc@x.com", p.Doctor.Email)
}

// The unique index is the authoritative guard: inserting a taken slot
// directly, without any pre-check, must surface ErrSlotTaken.
func TestCreateAppointmentSlotConflict(t *testing.T) {
	db := newTestDB(t)
	d := seedDoctor(t, db, "doc@x.com")
	p := seedPatient(t, db, "p@x.com", d.ID)
	p2 := seedPatient(t, db, "p2@x.com", d.ID)

	first := &models.Appointment{DoctorID: d.ID, PatientID: p.ID, Datetime: "2026-09-01T10:30:00", Message: "checkup"}
	require.NoError(t, CreateAppointment(db, first))

	second := &models.Appointment{DoctorID: d.ID, PatientID: p2.ID, Datetime: "2026-09-01T10:30:00", Message: "other"}
	assert.ErrorIs(t, CreateAppointment(db, second), ErrSlotTaken)

	taken, err := SlotTaken(db, d.ID, "2026-09-01T10:30:00")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = SlotTaken(db, d.ID, "2026-09-01T11:00:00")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestListAppointmentsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	d := seedDoctor(t, db, "doc@x.com")
	p := seedPatient(t, db, "p@x.com", d.ID)

	for _, dt := range []string{"2026-09-01T09:00:00", "2026-09-03T09:00:00", "2026-09-02T09:00:00"} {
		require.NoError(t, CreateAppointment(db, &models.Appointment{DoctorID: d.ID, PatientID: p.ID, Datetime: dt}))
	}

	appts, err := ListAppointmentsByDoctor(db, d.ID)
	require.NoError(t, err)
	require.Len(t, appts, 3)
	assert.Equal(t, "2026-09-03T09:00:00", appts[0].Datetime)
	assert.Equal(t, "2026-09-02T09:00:00", appts[1].Datetime)
	assert.Equal(t, "2026-09-01T09:00:00", appts[2].Datetime)
}

func TestConversationOrderBreaksTiesByID(t *testing.T) {
	db := newTestDB(t)
	d := seedDoctor(t, db, "doc@x.com")
	p := seedPatient(t, db, "p@x.com", d.ID)

	ts := "2026-08-31T12:00:00"
	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, CreateMessage(db, &models.Message{
			DoctorID: d.ID, PatientID: p.ID, SenderRole: models.RolePatient, Timestamp: ts, Text: text,
		}))
	}

	msgs, err := ListConversation(db, d.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.Equal(t, "third", msgs[2].Text)
}

func TestListMeasurementsNewestFirstWithIDTieBreak(t *testing.T) {
	db := newTestDB(t)
	d := seedDoctor(t, db, "doc@x.com")
	p := seedPatient(t, db, "p@x.com", d.ID)

	started := "2026-08-31T08:00:00"
	m1 := &models.Measurement{PatientID: p.ID, Type: models.MeasurementECG, StartedAt: started, FilePath: "/tmp/a.csv"}
	m2 := &models.Measurement{PatientID: p.ID, Type: models.MeasurementEDA, StartedAt: started, FilePath: "/tmp/b.csv"}
	require.NoError(t, CreateMeasurement(db, m1))
	require.NoError(t, CreateMeasurement(db, m2))

	list, err := ListMeasurementsByPatient(db, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, m2.ID, list[0].ID, "equal started_at must order by descending id")
	assert.Equal(t, m1.ID, list[1].ID)
}

func TestDoctorLookupsAndNotFound(t *testing.T) {
	db := newTestDB(t)
	d := seedDoctor(t, db, "doc@x.com")

	byEmail, err := DoctorByEmail(db, "doc@x.com")
	require.NoError(t, err)
	assert.Equal(t, d.ID, byEmail.ID)

	byName, err := DoctorByName(db, "Ana")
	require.NoError(t, err)
	assert.Equal(t, d.ID, byName.ID)

	_, err = DoctorByID(db, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = MeasurementByID(db, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
