package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"DocSpot/authentication"
	"DocSpot/config"
	"DocSpot/models"
	"DocSpot/utils"
)

const doctorListCacheKey = "doctors:list"

func FetchDoctorByID(ctx context.Context, docID string) (*models.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(docID)
	if err != nil {
		return nil, errors.New(utils.DOCTOR_NOT_FOUND)
	}
	coll := config.OpenCollection(config.DoctorCollection)
	var doctor models.Doctor
	if err := config.FindOne(ctx, coll, bson.M{"_id": oid}, &doctor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New(utils.DOCTOR_NOT_FOUND)
		}
		log.Println("Error while fetching doctor: ", err)
		return nil, err
	}
	return &doctor, nil
}

/*
* Verify credentials and mint a doctor token
 */
func LoginDoctor(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New(utils.MISSING_DETAILS)
	}
	coll := config.OpenCollection(config.DoctorCollection)
	var doctor models.Doctor
	if err := config.FindOne(ctx, coll, bson.M{"email": email}, &doctor); err != nil {
		return "", errors.New(utils.INVALID_CREDENTIALS)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(password)); err != nil {
		return "", errors.New(utils.INVALID_CREDENTIALS)
	}
	return authentication.CreateToken(doctor.ID.Hex(), authentication.RoleDoctor, 24*time.Hour)
}

/*
* Public doctor list, passwords and emails projected away
* Served from cache when warm
 */
func FetchDoctorList(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if hit, err := config.GetCache(ctx, doctorListCacheKey, &doctors); err != nil {
		log.Println("Error while reading doctor list cache: ", err)
	} else if hit {
		return doctors, nil
	}

	coll := config.OpenCollection(config.DoctorCollection)
	opts := options.Find().SetProjection(bson.M{"password": 0, "email": 0})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("Error while listing doctors: ", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	doctors = []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	if err := config.SetCache(ctx, doctorListCacheKey, doctors); err != nil {
		log.Println("Error while caching doctor list: ", err)
	}
	return doctors, nil
}

func invalidateDoctorCache(ctx context.Context) {
	if err := config.DeleteCache(ctx, doctorListCacheKey); err != nil {
		log.Println("Error while invalidating doctor list cache: ", err)
	}
}

/*
* Flip the available flag
* An unavailable doctor cannot be booked (the reserve filter also
* requires available=true)
 */
func ChangeAvailability(ctx context.Context, docID string) (bool, error) {
	doctor, err := FetchDoctorByID(ctx, docID)
	if err != nil {
		return false, err
	}
	coll := config.OpenCollection(config.DoctorCollection)
	next := !doctor.Available
	_, err = config.UpdateOne(ctx, coll,
		bson.M{"_id": doctor.ID},
		bson.M{"$set": bson.M{"available": next, "updatedAt": time.Now()}})
	if err != nil {
		log.Println("Error while changing availability: ", err)
		return false, err
	}
	invalidateDoctorCache(ctx)
	return next, nil
}

type DoctorProfileUpdate struct {
	Fees      *float64        `json:"fees"`
	Address   *models.Address `json:"address"`
	About     *string         `json:"about"`
	Available *bool           `json:"available"`
}

func UpdateDoctorProfile(ctx context.Context, docID string, update DoctorProfileUpdate) error {
	doctor, err := FetchDoctorByID(ctx, docID)
	if err != nil {
		return err
	}
	set := bson.M{"updatedAt": time.Now()}
	if update.Fees != nil {
		set["fees"] = *update.Fees
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.About != nil {
		set["about"] = *update.About
	}
	if update.Available != nil {
		set["available"] = *update.Available
	}
	coll := config.OpenCollection(config.DoctorCollection)
	if _, err := config.UpdateOne(ctx, coll, bson.M{"_id": doctor.ID}, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating doctor profile: ", err)
		return err
	}
	invalidateDoctorCache(ctx)
	return nil
}

type DoctorDashboard struct {
	Earnings           float64              `json:"earnings"`
	Appointments       int                  `json:"appointments"`
	Patients           int                  `json:"patients"`
	LatestAppointments []models.Appointment `json:"latestAppointments"`
}

/*
* Earnings count paid or completed, non-cancelled appointments
* Patients are distinct userIds across the doctor's appointments
 */
func BuildDoctorDashboard(appointments []models.Appointment) DoctorDashboard {
	dashboard := DoctorDashboard{Appointments: len(appointments)}
	seen := map[string]bool{}
	for _, a := range appointments {
		if !a.Cancelled && (a.Payment || a.IsCompleted) {
			dashboard.Earnings += a.Amount
		}
		seen[a.UserID] = true
	}
	dashboard.Patients = len(seen)
	if len(appointments) > 5 {
		dashboard.LatestAppointments = appointments[:5]
	} else {
		dashboard.LatestAppointments = appointments
	}
	return dashboard
}

func FetchDoctorDashboard(ctx context.Context, docID string) (*DoctorDashboard, error) {
	appointments, err := FetchAppointmentsByDoctor(ctx, docID)
	if err != nil {
		return nil, err
	}
	dashboard := BuildDoctorDashboard(appointments)
	return &dashboard, nil
}

// FetchDoctorProfile returns the doctor's own document minus the password.
func FetchDoctorProfile(ctx context.Context, docID string) (*models.Doctor, error) {
	doctor, err := FetchDoctorByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	doctor.Password = ""
	return doctor, nil
}
