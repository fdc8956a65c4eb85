package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"DocSpot/authentication"
	"DocSpot/config"
	"DocSpot/models"
	"DocSpot/utils"
)

func FetchUserByID(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New(utils.USER_NOT_FOUND)
	}
	coll := config.OpenCollection(config.UserCollection)
	var user models.User
	if err := config.FindOne(ctx, coll, bson.M{"_id": oid}, &user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New(utils.USER_NOT_FOUND)
		}
		log.Println("Error while fetching user: ", err)
		return nil, err
	}
	return &user, nil
}

/*
* Validate, hash and create the patient account, then mint a token
 */
func RegisterUser(ctx context.Context, name, email, password string) (string, error) {
	if strings.TrimSpace(name) == "" || email == "" || password == "" {
		return "", errors.New(utils.MISSING_DETAILS)
	}
	if err := utils.ValidateEmail(email); err != nil {
		return "", err
	}
	if err := utils.ValidatePassword(password); err != nil {
		return "", err
	}

	coll := config.OpenCollection(config.UserCollection)
	count, err := coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Println("Error while checking for existing user: ", err)
		return "", err
	}
	if count > 0 {
		return "", errors.New(utils.EMAIL_ALREADY_REGISTERED)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user := models.User{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	inserted, err := config.CreateOne(ctx, coll, user)
	if err != nil {
		log.Println("Error while creating user: ", err)
		return "", err
	}
	return authentication.CreateToken(inserted.InsertedID.(primitive.ObjectID).Hex(), authentication.RoleUser, 24*time.Hour)
}

func LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New(utils.MISSING_DETAILS)
	}
	coll := config.OpenCollection(config.UserCollection)
	var user models.User
	if err := config.FindOne(ctx, coll, bson.M{"email": email}, &user); err != nil {
		return "", errors.New(utils.INVALID_CREDENTIALS)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New(utils.INVALID_CREDENTIALS)
	}
	return authentication.CreateToken(user.ID.Hex(), authentication.RoleUser, 24*time.Hour)
}

func FetchUserProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := FetchUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

type UserProfileUpdate struct {
	Name    string
	Phone   string
	Address string // JSON-encoded address object from the multipart form
	Gender  string
	Dob     string
	Image   *multipart.FileHeader
}

/*
* Update the profile from multipart form fields
* The address arrives JSON-encoded; an optional image goes to cloudinary
 */
func UpdateUserProfile(ctx context.Context, userID string, update UserProfileUpdate) error {
	user, err := FetchUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(update.Name) == "" || update.Phone == "" {
		return errors.New(utils.MISSING_DETAILS)
	}

	set := bson.M{
		"name":      update.Name,
		"phone":     update.Phone,
		"gender":    update.Gender,
		"dob":       update.Dob,
		"updatedAt": time.Now(),
	}
	if update.Address != "" {
		var address models.Address
		if err := json.Unmarshal([]byte(update.Address), &address); err != nil {
			return errors.New(utils.MISSING_DETAILS)
		}
		set["address"] = address
	}
	if update.Image != nil {
		imageURL, err := utils.UploadImage(ctx, update.Image, "docspot/users")
		if err != nil {
			log.Println("Error while uploading profile image: ", err)
			return err
		}
		set["image"] = imageURL
	}

	coll := config.OpenCollection(config.UserCollection)
	if _, err := config.UpdateOne(ctx, coll, bson.M{"_id": user.ID}, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating user profile: ", err)
		return err
	}
	return nil
}
