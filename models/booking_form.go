package models

import (
	"encoding/json"
	"fmt"
)

// BookingForm is the accumulated, partial record of an in-progress booking.
// All fields are optional until the step that requires them; merging a patch
// never clears unrelated fields.
type BookingForm struct {
	// Identity.
	FullName string `json:"fullName,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Email    string `json:"email,omitempty"`
	DOB      string `json:"dob,omitempty"` // ISO date
	Age      *int   `json:"age,omitempty"` // derived from DOB
	Gender   string `json:"gender,omitempty"`
	Address  string `json:"address,omitempty"`

	// Measurements. The extended fields are only required for weight-loss plans.
	Weight string `json:"weight,omitempty"`
	Height string `json:"height,omitempty"`
	Neck   string `json:"neck,omitempty"`
	Waist  string `json:"waist,omitempty"`
	Hip    string `json:"hip,omitempty"`
	Chest  string `json:"chest,omitempty"`

	// Medical.
	MedicalHistory      string   `json:"medicalHistory,omitempty"`
	Reports             []string `json:"reports,omitempty"` // uploaded file references
	AppointmentConcerns string   `json:"appointmentConcerns,omitempty"`

	// Lifestyle.
	Bowel        string `json:"bowel,omitempty"`
	DailyFood    string `json:"dailyFood,omitempty"`
	WaterIntake  string `json:"waterIntake,omitempty"`
	WakeUpTime   string `json:"wakeUpTime,omitempty"`
	SleepTime    string `json:"sleepTime,omitempty"`
	SleepQuality string `json:"sleepQuality,omitempty"`

	// Scheduling.
	AppointmentMode string `json:"appointmentMode,omitempty"` // IN_PERSON | ONLINE
	AppointmentDate string `json:"appointmentDate,omitempty"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
	SlotID          string `json:"slotId,omitempty"`

	// Plan metadata.
	PlanSlug        string `json:"planSlug,omitempty"`
	PlanName        string `json:"planName,omitempty"`
	PlanPrice       string `json:"planPrice,omitempty"`
	PlanPackageName string `json:"planPackageName,omitempty"`
	PlanDuration    string `json:"planDuration,omitempty"`

	// Resume linkage.
	AppointmentID string `json:"appointmentId,omitempty"`
	PatientID     string `json:"patientId,omitempty"`
}

// FormPatch is a partial update to a BookingForm, keyed by the wire field
// names. Keys absent from the patch leave the stored value untouched.
type FormPatch map[string]json.RawMessage

// ParseFormPatch decodes raw JSON into a FormPatch, rejecting unknown field
// names so a typo cannot silently drop data.
func ParseFormPatch(data []byte) (FormPatch, error) {
	var patch FormPatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("invalid form patch: %w", err)
	}
	for name := range patch {
		if _, ok := formFieldNames[name]; !ok {
			return nil, fmt.Errorf("unknown booking form field %q", name)
		}
	}
	return patch, nil
}

var formFieldNames = map[string]struct{}{
	"fullName": {}, "mobile": {}, "email": {}, "dob": {}, "age": {},
	"gender": {}, "address": {},
	"weight": {}, "height": {}, "neck": {}, "waist": {}, "hip": {}, "chest": {},
	"medicalHistory": {}, "reports": {}, "appointmentConcerns": {},
	"bowel": {}, "dailyFood": {}, "waterIntake": {}, "wakeUpTime": {},
	"sleepTime": {}, "sleepQuality": {},
	"appointmentMode": {}, "appointmentDate": {}, "appointmentTime": {}, "slotId": {},
	"planSlug": {}, "planName": {}, "planPrice": {}, "planPackageName": {}, "planDuration": {},
	"appointmentId": {}, "patientId": {},
}

// Apply shallow-merges the patch into the form. Only keys present in the
// patch overwrite; a JSON null clears its field to the empty value.
func (f *BookingForm) Apply(patch FormPatch) error {
	for name, raw := range patch {
		if err := f.applyField(name, raw); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

func (f *BookingForm) applyField(name string, raw json.RawMessage) error {
	switch name {
	case "fullName":
		return mergeString(&f.FullName, raw)
	case "mobile":
		return mergeString(&f.Mobile, raw)
	case "email":
		return mergeString(&f.Email, raw)
	case "dob":
		return mergeString(&f.DOB, raw)
	case "age":
		return mergeInt(&f.Age, raw)
	case "gender":
		return mergeString(&f.Gender, raw)
	case "address":
		return mergeString(&f.Address, raw)
	case "weight":
		return mergeString(&f.Weight, raw)
	case "height":
		return mergeString(&f.Height, raw)
	case "neck":
		return mergeString(&f.Neck, raw)
	case "waist":
		return mergeString(&f.Waist, raw)
	case "hip":
		return mergeString(&f.Hip, raw)
	case "chest":
		return mergeString(&f.Chest, raw)
	case "medicalHistory":
		return mergeString(&f.MedicalHistory, raw)
	case "reports":
		return mergeStrings(&f.Reports, raw)
	case "appointmentConcerns":
		return mergeString(&f.AppointmentConcerns, raw)
	case "bowel":
		return mergeString(&f.Bowel, raw)
	case "dailyFood":
		return mergeString(&f.DailyFood, raw)
	case "waterIntake":
		return mergeString(&f.WaterIntake, raw)
	case "wakeUpTime":
		return mergeString(&f.WakeUpTime, raw)
	case "sleepTime":
		return mergeString(&f.SleepTime, raw)
	case "sleepQuality":
		return mergeString(&f.SleepQuality, raw)
	case "appointmentMode":
		return mergeString(&f.AppointmentMode, raw)
	case "appointmentDate":
		return mergeString(&f.AppointmentDate, raw)
	case "appointmentTime":
		return mergeString(&f.AppointmentTime, raw)
	case "slotId":
		return mergeString(&f.SlotID, raw)
	case "planSlug":
		return mergeString(&f.PlanSlug, raw)
	case "planName":
		return mergeString(&f.PlanName, raw)
	case "planPrice":
		return mergeString(&f.PlanPrice, raw)
	case "planPackageName":
		return mergeString(&f.PlanPackageName, raw)
	case "planDuration":
		return mergeString(&f.PlanDuration, raw)
	case "appointmentId":
		return mergeString(&f.AppointmentID, raw)
	case "patientId":
		return mergeString(&f.PatientID, raw)
	}
	return fmt.Errorf("unknown booking form field %q", name)
}

func mergeString(dst *string, raw json.RawMessage) error {
	if isJSONNull(raw) {
		*dst = ""
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func mergeInt(dst **int, raw json.RawMessage) error {
	if isJSONNull(raw) {
		*dst = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = &v
	return nil
}

func mergeStrings(dst *[]string, raw json.RawMessage) error {
	if isJSONNull(raw) {
		*dst = nil
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// Field returns the named field's value and whether it holds a present value.
// Empty strings and nil pointers are absent; zero numbers are present, so a
// legitimately-zero answer never fails a required-field check.
func (f *BookingForm) Field(name string) (any, bool) {
	str := func(v string) (any, bool) { return v, v != "" }
	switch name {
	case "fullName":
		return str(f.FullName)
	case "mobile":
		return str(f.Mobile)
	case "email":
		return str(f.Email)
	case "dob":
		return str(f.DOB)
	case "age":
		if f.Age == nil {
			return nil, false
		}
		return *f.Age, true
	case "gender":
		return str(f.Gender)
	case "address":
		return str(f.Address)
	case "weight":
		return str(f.Weight)
	case "height":
		return str(f.Height)
	case "neck":
		return str(f.Neck)
	case "waist":
		return str(f.Waist)
	case "hip":
		return str(f.Hip)
	case "chest":
		return str(f.Chest)
	case "medicalHistory":
		return str(f.MedicalHistory)
	case "reports":
		return f.Reports, f.Reports != nil
	case "appointmentConcerns":
		return str(f.AppointmentConcerns)
	case "bowel":
		return str(f.Bowel)
	case "dailyFood":
		return str(f.DailyFood)
	case "waterIntake":
		return str(f.WaterIntake)
	case "wakeUpTime":
		return str(f.WakeUpTime)
	case "sleepTime":
		return str(f.SleepTime)
	case "sleepQuality":
		return str(f.SleepQuality)
	case "appointmentMode":
		return str(f.AppointmentMode)
	case "appointmentDate":
		return str(f.AppointmentDate)
	case "appointmentTime":
		return str(f.AppointmentTime)
	case "slotId":
		return str(f.SlotID)
	case "planSlug":
		return str(f.PlanSlug)
	case "planName":
		return str(f.PlanName)
	case "planPrice":
		return str(f.PlanPrice)
	case "planPackageName":
		return str(f.PlanPackageName)
	case "planDuration":
		return str(f.PlanDuration)
	case "appointmentId":
		return str(f.AppointmentID)
	case "patientId":
		return str(f.PatientID)
	}
	return nil, false
}

// IsEmpty reports whether no field has been set. Every field is omitempty, so
// an untouched form serializes to an empty object.
func (f *BookingForm) IsEmpty() bool {
	b, err := json.Marshal(f)
	return err == nil && string(b) == "{}"
}
