package service

import (
	"errors"
	"testing"
	"time"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
)

// fakeWard is an in-memory stand-in for the patient, room and stay stores.
// Admit applies the same conditional room claim the real store does.
type fakeWard struct {
	patients map[uint]*models.Patient
	rooms    map[uint]*models.Room
	stays    map[uint]*models.Stay
	nextStay uint
	writes   int
	actions  []string
}

func newFakeWard() *fakeWard {
	return &fakeWard{
		patients: map[uint]*models.Patient{
			1: {PatientID: 1, FirstName: "John", LastName: "Smith", Age: 40},
		},
		rooms: map[uint]*models.Room{
			10: {RoomID: 10, FloorID: 1, RoomNumber: "101"},
			11: {RoomID: 11, FloorID: 1, RoomNumber: "102", IsOccupied: true},
		},
		stays:    map[uint]*models.Stay{},
		nextStay: 1,
	}
}

func (f *fakeWard) GetPatientByID(id uint) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, repository.ErrPatientNotFound
	}
	return p, nil
}

func (f *fakeWard) GetRoomByID(id uint) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeWard) GetAllWithDetails() ([]models.StayWithDetails, error) {
	out := make([]models.StayWithDetails, 0, len(f.stays))
	for _, s := range f.stays {
		out = append(out, models.StayWithDetails{
			StayID:    s.StayID,
			PatientID: s.PatientID,
			RoomID:    s.RoomID,
			CheckIn:   s.CheckIn,
			CheckOut:  s.CheckOut,
			Notes:     s.Notes,
		})
	}
	return out, nil
}

func (f *fakeWard) Admit(stay *models.Stay) error {
	room, ok := f.rooms[stay.RoomID]
	if !ok {
		return repository.ErrRoomNotFound
	}
	if room.IsOccupied {
		return repository.ErrRoomOccupied
	}

	stay.StayID = f.nextStay
	f.nextStay++
	copied := *stay
	f.stays[stay.StayID] = &copied
	room.IsOccupied = true
	f.writes += 2
	return nil
}

func (f *fakeWard) Discharge(stayID uint, checkOut time.Time) (*models.Stay, error) {
	stay, ok := f.stays[stayID]
	if !ok {
		return nil, repository.ErrStayNotFound
	}
	if stay.CheckOut != nil {
		return nil, repository.ErrAlreadyDischarged
	}

	stay.CheckOut = &checkOut
	f.rooms[stay.RoomID].IsOccupied = false
	f.writes += 2

	copied := *stay
	return &copied, nil
}

func (f *fakeWard) CreateAuditLog(userID *uint, action string, details string) error {
	f.actions = append(f.actions, action)
	return nil
}

func newTestAdmissionService(ward *fakeWard) *AdmissionService {
	return NewAdmissionService(ward, ward, ward, ward)
}

func TestAdmitThenDischarge(t *testing.T) {
	ward := newFakeWard()
	svc := newTestAdmissionService(ward)

	before := time.Now()
	stay := &models.Stay{PatientID: 1, RoomID: 10, Notes: "observation"}
	if err := svc.Admit(stay); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	if stay.StayID == 0 {
		t.Error("admit should assign a stay id")
	}
	if stay.CheckOut != nil {
		t.Error("new stay should have no check-out")
	}
	if !ward.rooms[10].IsOccupied {
		t.Error("room should be occupied after admit")
	}
	if stay.CheckIn.Before(before) {
		t.Errorf("check-in %v is before admit time %v", stay.CheckIn, before)
	}

	discharged, err := svc.Discharge(stay.StayID)
	if err != nil {
		t.Fatalf("Discharge: %v", err)
	}
	if ward.rooms[10].IsOccupied {
		t.Error("room should be free after discharge")
	}
	if discharged.CheckOut == nil {
		t.Fatal("discharge should set check-out")
	}
	if discharged.CheckOut.Before(stay.CheckIn) {
		t.Errorf("check-out %v is before check-in %v", discharged.CheckOut, stay.CheckIn)
	}
}

func TestAdmitKeepsProvidedCheckIn(t *testing.T) {
	ward := newFakeWard()
	svc := newTestAdmissionService(ward)

	checkIn := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	stay := &models.Stay{PatientID: 1, RoomID: 10, CheckIn: checkIn}
	if err := svc.Admit(stay); err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if !stay.CheckIn.Equal(checkIn) {
		t.Errorf("check-in = %v, want %v", stay.CheckIn, checkIn)
	}
}

func TestAdmitUnknownReferences(t *testing.T) {
	ward := newFakeWard()
	svc := newTestAdmissionService(ward)

	err := svc.Admit(&models.Stay{PatientID: 99, RoomID: 10})
	if !errors.Is(err, repository.ErrPatientNotFound) {
		t.Errorf("unknown patient: err = %v, want ErrPatientNotFound", err)
	}

	err = svc.Admit(&models.Stay{PatientID: 1, RoomID: 99})
	if !errors.Is(err, repository.ErrRoomNotFound) {
		t.Errorf("unknown room: err = %v, want ErrRoomNotFound", err)
	}

	if ward.writes != 0 {
		t.Errorf("failed admits performed %d writes, want 0", ward.writes)
	}
}

func TestAdmitOccupiedRoomRejected(t *testing.T) {
	ward := newFakeWard()
	svc := newTestAdmissionService(ward)

	err := svc.Admit(&models.Stay{PatientID: 1, RoomID: 11})
	if !errors.Is(err, repository.ErrRoomOccupied) {
		t.Errorf("err = %v, want ErrRoomOccupied", err)
	}
	if ward.writes != 0 {
		t.Errorf("rejected admit performed %d writes, want 0", ward.writes)
	}
}

func TestSecondAdmitIntoSameRoomRejected(t *testing.T) {
	ward := newFakeWard()
	svc := newTestAdmissionService(ward)

	if err := svc.Admit(&models.Stay{PatientID: 1, RoomID: 10}); err != nil {
		t.Fatalf("first admit: %v", err)
	}
	err := svc.Admit(&models.Stay{PatientID: 1, RoomID: 10})
	if !errors.Is(err, repository.ErrRoomOccupied) {
		t.Errorf("second admit: err = %v, want ErrRoomOccupied", err)
	}
}

func TestDischargeUnknownStay(t *testing.T) {
	ward := newFakeWard()
	svc := newTestAdmissionService(ward)

	_, err := svc.Discharge(42)
	if !errors.Is(err, repository.ErrStayNotFound) {
		t.Errorf("err = %v, want ErrStayNotFound", err)
	}
	if ward.writes != 0 {
		t.Errorf("failed discharge performed %d writes, want 0", ward.writes)
	}
}

func TestDischargeTwiceRejected(t *testing.T) {
	ward := newFakeWard()
	svc := newTestAdmissionService(ward)

	stay := &models.Stay{PatientID: 1, RoomID: 10}
	if err := svc.Admit(stay); err != nil {
		t.Fatalf("Admit: %v", err)
	}
	first, err := svc.Discharge(stay.StayID)
	if err != nil {
		t.Fatalf("first discharge: %v", err)
	}

	writesBefore := ward.writes
	_, err = svc.Discharge(stay.StayID)
	if !errors.Is(err, repository.ErrAlreadyDischarged) {
		t.Errorf("second discharge: err = %v, want ErrAlreadyDischarged", err)
	}
	if ward.writes != writesBefore {
		t.Error("second discharge should perform no writes")
	}
	if !ward.stays[stay.StayID].CheckOut.Equal(*first.CheckOut) {
		t.Error("second discharge must not move the check-out time")
	}
}

func TestLifecycleIsAudited(t *testing.T) {
	ward := newFakeWard()
	svc := newTestAdmissionService(ward)

	stay := &models.Stay{PatientID: 1, RoomID: 10}
	if err := svc.Admit(stay); err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if _, err := svc.Discharge(stay.StayID); err != nil {
		t.Fatalf("Discharge: %v", err)
	}

	want := []string{"patient_admit", "patient_discharge"}
	if len(ward.actions) != len(want) {
		t.Fatalf("audit actions = %v, want %v", ward.actions, want)
	}
	for i := range want {
		if ward.actions[i] != want[i] {
			t.Errorf("audit action %d = %q, want %q", i, ward.actions[i], want[i])
		}
	}
}
