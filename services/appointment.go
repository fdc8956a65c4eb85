package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"DocSpot/config"
	"DocSpot/models"
	"DocSpot/utils"
)

type BookingInput struct {
	UserID   string
	DocID    string
	SlotDate string
	SlotTime string
}

// Requester identifies who is asking for a cancellation.
type Requester struct {
	Role string
	ID   string
}

/*
* Validate the slot coordinates before any mutation
 */
func validateBookingInput(input BookingInput) error {
	if input.DocID == "" || input.SlotDate == "" || input.SlotTime == "" {
		return errors.New(utils.MISSING_DETAILS)
	}
	if err := utils.ValidateSlotDate(input.SlotDate); err != nil {
		return err
	}
	return utils.ValidateSlotTime(input.SlotTime)
}

/*
* Reserve the slot with a single conditional update
* The filter admits the doctor only while the slot is absent from the
* ledger entry, so two concurrent bookings cannot both get through
 */
func reserveSlot(ctx context.Context, docOID primitive.ObjectID, dateKey, timeSlot string) error {
	coll := config.OpenCollection(config.DoctorCollection)
	field := "slots_booked." + dateKey
	filter := bson.M{
		"_id":       docOID,
		"available": true,
		field:       bson.M{"$ne": timeSlot},
	}
	update := bson.M{
		"$addToSet": bson.M{field: timeSlot},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := config.UpdateOne(ctx, coll, filter, update)
	if err != nil {
		log.Println("Error while reserving slot: ", err)
		return err
	}
	if result.ModifiedCount == 0 {
		doctor, fetchErr := FetchDoctorByID(ctx, docOID.Hex())
		return reserveFailure(doctor, fetchErr)
	}
	return nil
}

/*
* The conditional reserve matched nothing; re-read the doctor to tell
* a taken slot apart from a doctor who vanished or went unavailable
* between the pre-check and the update
 */
func reserveFailure(doctor *models.Doctor, fetchErr error) error {
	if fetchErr != nil {
		return fetchErr
	}
	if !doctor.Available {
		return errors.New(utils.DOCTOR_NOT_AVAILABLE)
	}
	return errors.New(utils.SLOT_ALREADY_BOOKED)
}

/*
* Pull the slot out of the ledger entry for the date
* Pulling from an absent or empty entry modifies nothing, which is
* reported to the caller but is not an error
 */
func releaseSlot(ctx context.Context, docOID primitive.ObjectID, dateKey, timeSlot string) (bool, error) {
	coll := config.OpenCollection(config.DoctorCollection)
	filter, update := releaseSlotQuery(docOID, dateKey, timeSlot)
	result, err := config.UpdateOne(ctx, coll, filter, update)
	if err != nil {
		log.Println("Error while releasing slot: ", err)
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

/*
* The filter requires the slot to still be present and the update pulls
* nothing else, so ModifiedCount reflects the pull alone
 */
func releaseSlotQuery(docOID primitive.ObjectID, dateKey, timeSlot string) (bson.M, bson.M) {
	field := "slots_booked." + dateKey
	filter := bson.M{"_id": docOID, field: timeSlot}
	update := bson.M{"$pull": bson.M{field: timeSlot}}
	return filter, update
}

/*
* Check doctor availability and the ledger, reserve the slot, then create
* the appointment with the denormalized snapshots
* The appointment insert happens only after the reservation succeeded; a
* failed insert compensates the reservation with a release
 */
func BookAppointment(ctx context.Context, input BookingInput) (*models.Appointment, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	doctor, err := FetchDoctorByID(ctx, input.DocID)
	if err != nil {
		return nil, err
	}
	if !doctor.Available {
		return nil, errors.New(utils.DOCTOR_NOT_AVAILABLE)
	}
	if doctor.SlotsBooked.Has(input.SlotDate, input.SlotTime) {
		return nil, errors.New(utils.SLOT_ALREADY_BOOKED)
	}

	user, err := FetchUserByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := reserveSlot(ctx, doctor.ID, input.SlotDate, input.SlotTime); err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		UserID:   input.UserID,
		DocID:    input.DocID,
		SlotDate: input.SlotDate,
		SlotTime: input.SlotTime,
		UserData: user.Snapshot(),
		DocData:  doctor.Snapshot(),
		Amount:   doctor.Fees,
		Date:     time.Now(),
	}
	coll := config.OpenCollection(config.AppointmentCollection)
	inserted, err := config.CreateOne(ctx, coll, appointment)
	if err != nil {
		log.Println("Error while creating appointment, compensating reservation: ", err)
		if _, relErr := releaseSlot(ctx, doctor.ID, input.SlotDate, input.SlotTime); relErr != nil {
			log.Println("Compensating release failed, ledger holds an orphaned slot: ", relErr)
		}
		return nil, err
	}
	appointment.ID = inserted.InsertedID.(primitive.ObjectID)

	invalidateDoctorCache(ctx)
	sendBookingConfirmation(appointment)

	return &appointment, nil
}

/*
* Ownership rules for cancellation
* Admin cancels anything, a doctor only appointments addressed to them,
* a patient only their own
 */
func canCancel(r Requester, appointment models.Appointment) bool {
	switch r.Role {
	case "admin":
		return true
	case "doctor":
		return appointment.DocID == r.ID
	case "user":
		return appointment.UserID == r.ID
	}
	return false
}

/*
* Mark the appointment cancelled, then release the slot from the ledger
* The cancel itself is conditional on cancelled=false, so a second
* release is rejected and never pulls the slot twice
 */
func CancelAppointment(ctx context.Context, appointmentID string, requester Requester) error {
	oid, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return errors.New(utils.APPOINTMENT_NOT_FOUND)
	}
	coll := config.OpenCollection(config.AppointmentCollection)

	var appointment models.Appointment
	if err := config.FindOne(ctx, coll, bson.M{"_id": oid}, &appointment); err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.New(utils.APPOINTMENT_NOT_FOUND)
		}
		log.Println("Error while fetching appointment: ", err)
		return err
	}
	if !canCancel(requester, appointment) {
		return errors.New(utils.NOT_AUTHORIZED)
	}

	result, err := config.UpdateOne(ctx, coll,
		bson.M{"_id": oid, "cancelled": false},
		bson.M{"$set": bson.M{"cancelled": true}})
	if err != nil {
		log.Println("Error while cancelling appointment: ", err)
		return err
	}
	if result.ModifiedCount == 0 {
		return errors.New(utils.APPOINTMENT_ALREADY_CANCELLED)
	}

	docOID, err := primitive.ObjectIDFromHex(appointment.DocID)
	if err != nil {
		log.Println("Invalid docId on appointment ", appointmentID, ": ", err)
		return nil
	}
	released, err := releaseSlot(ctx, docOID, appointment.SlotDate, appointment.SlotTime)
	if err != nil {
		return err
	}
	if !released {
		// Ledger and appointment state had already diverged (e.g. the
		// date key was pruned); the cancel still stands.
		log.Println("Ledger entry missing while releasing", appointment.SlotDate, appointment.SlotTime, "for doctor", appointment.DocID)
	}
	invalidateDoctorCache(ctx)
	return nil
}

/*
* Doctor marks an own appointment completed
* Independent flag, no ledger interaction
 */
func CompleteAppointment(ctx context.Context, appointmentID, docID string) error {
	oid, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return errors.New(utils.APPOINTMENT_NOT_FOUND)
	}
	coll := config.OpenCollection(config.AppointmentCollection)
	result, err := config.UpdateOne(ctx, coll,
		bson.M{"_id": oid, "docId": docID, "cancelled": false},
		bson.M{"$set": bson.M{"isCompleted": true}})
	if err != nil {
		log.Println("Error while completing appointment: ", err)
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New(utils.APPOINTMENT_NOT_FOUND)
	}
	return nil
}

func FetchAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, errors.New(utils.APPOINTMENT_NOT_FOUND)
	}
	coll := config.OpenCollection(config.AppointmentCollection)
	var appointment models.Appointment
	if err := config.FindOne(ctx, coll, bson.M{"_id": oid}, &appointment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New(utils.APPOINTMENT_NOT_FOUND)
		}
		return nil, err
	}
	return &appointment, nil
}

func fetchAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	coll := config.OpenCollection(config.AppointmentCollection)
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		log.Println("Error while listing appointments: ", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func FetchAppointmentsByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return fetchAppointments(ctx, bson.M{"userId": userID})
}

func FetchAppointmentsByDoctor(ctx context.Context, docID string) ([]models.Appointment, error) {
	return fetchAppointments(ctx, bson.M{"docId": docID})
}

func FetchAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	return fetchAppointments(ctx, bson.M{})
}

func sendBookingConfirmation(appointment models.Appointment) {
	if !utils.EmailConfigured() || appointment.UserData.Email == "" {
		return
	}
	go func() {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your appointment with %s (%s) on %s at %s is booked.</p>",
			appointment.UserData.Name, appointment.DocData.Name,
			appointment.DocData.Speciality, appointment.SlotDate, appointment.SlotTime)
		if err := utils.SendEmail(appointment.UserData.Email, "Appointment booked", body); err != nil {
			log.Println("Error while sending booking confirmation: ", err)
		}
	}()
}
