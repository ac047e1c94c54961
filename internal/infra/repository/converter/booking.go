package converter

import (
	"encoding/json"
	"time"

	"hotel-back-office/internal/domain/booking"
	"hotel-back-office/internal/domain/room"

	"github.com/google/uuid"
)

type checkInRecordPayload struct {
	At          time.Time  `json:"at"`
	StaffID     uuid.UUID  `json:"staff_id"`
	RoomKey     string     `json:"room_key"`
	ExtraGuests []string   `json:"extra_guests,omitempty"`
	CustomTime  *time.Time `json:"custom_time,omitempty"`
}

type damagePayload struct {
	Description string `json:"description"`
	CostCents   int64  `json:"cost_cents"`
}

type checkOutRecordPayload struct {
	At         time.Time       `json:"at"`
	StaffID    uuid.UUID       `json:"staff_id"`
	Condition  string          `json:"condition"`
	Damages    []damagePayload `json:"damages,omitempty"`
	CustomTime *time.Time      `json:"custom_time,omitempty"`
}

func CheckInRecordToJSON(rec *booking.CheckInRecord) ([]byte, error) {
	if rec == nil {
		return nil, nil
	}
	guests := make([]string, len(rec.ExtraGuests))
	for i, g := range rec.ExtraGuests {
		guests[i] = g.Name
	}
	return json.Marshal(checkInRecordPayload{
		At:          rec.At,
		StaffID:     rec.StaffID,
		RoomKey:     rec.RoomKey,
		ExtraGuests: guests,
		CustomTime:  rec.CustomTime,
	})
}

func CheckInRecordFromJSON(data []byte) (*booking.CheckInRecord, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var p checkInRecordPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	guests := make([]booking.ExtraGuest, len(p.ExtraGuests))
	for i, name := range p.ExtraGuests {
		guests[i] = booking.ExtraGuest{Name: name}
	}
	return &booking.CheckInRecord{
		At:          p.At,
		StaffID:     p.StaffID,
		RoomKey:     p.RoomKey,
		ExtraGuests: guests,
		CustomTime:  p.CustomTime,
	}, nil
}

func CheckOutRecordToJSON(rec *booking.CheckOutRecord) ([]byte, error) {
	if rec == nil {
		return nil, nil
	}
	damages := make([]damagePayload, len(rec.Damages))
	for i, d := range rec.Damages {
		damages[i] = damagePayload{Description: d.Description, CostCents: d.CostCents}
	}
	return json.Marshal(checkOutRecordPayload{
		At:         rec.At,
		StaffID:    rec.StaffID,
		Condition:  rec.Condition.String(),
		Damages:    damages,
		CustomTime: rec.CustomTime,
	})
}

func CheckOutRecordFromJSON(data []byte) (*booking.CheckOutRecord, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var p checkOutRecordPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	condition, err := room.NewCondition(p.Condition)
	if err != nil {
		return nil, err
	}
	damages := make([]booking.Damage, len(p.Damages))
	for i, d := range p.Damages {
		damages[i] = booking.Damage{Description: d.Description, CostCents: d.CostCents}
	}
	return &booking.CheckOutRecord{
		At:         p.At,
		StaffID:    p.StaffID,
		Condition:  condition,
		Damages:    damages,
		CustomTime: p.CustomTime,
	}, nil
}
