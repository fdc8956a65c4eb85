package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"DocSpot/authentication"
	"DocSpot/config"
	"DocSpot/models"
	"DocSpot/utils"
)

/*
* Admin credentials live in the environment, not the database
 */
func LoginAdmin(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New(utils.MISSING_DETAILS)
	}
	if email != config.App.AdminEmail || password != config.App.AdminPassword {
		return "", errors.New(utils.INVALID_CREDENTIALS)
	}
	return authentication.CreateToken(email, authentication.RoleAdmin, 24*time.Hour)
}

type AddDoctorInput struct {
	Name       string
	Email      string
	Password   string
	Speciality string
	Degree     string
	Experience string
	About      string
	Fees       string
	Address    string // JSON object or JSON-encoded string
	Image      *multipart.FileHeader
}

func validateAddDoctorInput(input AddDoctorInput) error {
	required := []string{
		input.Name, input.Email, input.Password, input.Speciality,
		input.Degree, input.Experience, input.About, input.Fees,
	}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return errors.New(utils.MISSING_DETAILS)
		}
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		return err
	}
	return utils.ValidatePassword(input.Password)
}

/*
* Validate the form, hash the password, push the image to cloudinary
* and insert the doctor document with an empty slot ledger
 */
func AddDoctor(ctx context.Context, input AddDoctorInput) (*models.Doctor, error) {
	if err := validateAddDoctorInput(input); err != nil {
		return nil, err
	}
	fees, err := strconv.ParseFloat(input.Fees, 64)
	if err != nil {
		return nil, errors.New(utils.MISSING_DETAILS)
	}

	coll := config.OpenCollection(config.DoctorCollection)
	count, err := coll.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		log.Println("Error while checking for existing doctor: ", err)
		return nil, err
	}
	if count > 0 {
		return nil, errors.New(utils.EMAIL_ALREADY_REGISTERED)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var address models.Address
	if input.Address != "" {
		if err := json.Unmarshal([]byte(input.Address), &address); err != nil {
			return nil, errors.New(utils.MISSING_DETAILS)
		}
	}

	imageURL := ""
	if input.Image != nil {
		imageURL, err = utils.UploadImage(ctx, input.Image, "docspot/doctors")
		if err != nil {
			log.Println("Error while uploading doctor image: ", err)
			return nil, err
		}
	}

	doctor := models.Doctor{
		Name:        input.Name,
		Email:       input.Email,
		Password:    string(hashed),
		Image:       imageURL,
		Speciality:  input.Speciality,
		Degree:      input.Degree,
		Experience:  input.Experience,
		About:       input.About,
		Available:   true,
		Fees:        fees,
		Address:     address,
		SlotsBooked: models.SlotLedger{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if _, err := config.CreateOne(ctx, coll, doctor); err != nil {
		log.Println("Error while creating doctor: ", err)
		return nil, err
	}
	invalidateDoctorCache(ctx)
	doctor.Password = ""
	return &doctor, nil
}

// FetchAllDoctors is the admin view: everything but the password hashes.
func FetchAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	coll := config.OpenCollection(config.DoctorCollection)
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("Error while listing doctors for admin: ", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

type AdminDashboard struct {
	Doctors            int                  `json:"doctors"`
	Appointments       int                  `json:"appointments"`
	Patients           int                  `json:"patients"`
	LatestAppointments []models.Appointment `json:"latestAppointments"`
}

func FetchAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	doctorCount, err := config.OpenCollection(config.DoctorCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	userCount, err := config.OpenCollection(config.UserCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	appointmentCount, err := config.OpenCollection(config.AppointmentCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	latest, err := fetchAppointments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if len(latest) > 5 {
		latest = latest[:5]
	}
	return &AdminDashboard{
		Doctors:            int(doctorCount),
		Appointments:       int(appointmentCount),
		Patients:           int(userCount),
		LatestAppointments: latest,
	}, nil
}
