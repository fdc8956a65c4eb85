package services

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"go.mongodb.org/mongo-driver/bson"

	"DocSpot/config"
	"DocSpot/models"
	"DocSpot/utils"
)

func omiseClient() (*omise.Client, error) {
	return omise.NewClient(config.App.OmisePublicKey, config.App.OmiseSecretKey)
}

// chargeAmount converts a fee to the smallest currency unit. Rounded, not
// truncated: float fees like 19.99 sit just below the true product.
func chargeAmount(fee float64) int64 {
	return int64(math.Round(fee * 100))
}

/*
* Guard that the appointment belongs to the payer and is payable
 */
func payableBy(appointment *models.Appointment, userID string) error {
	if appointment.UserID != userID {
		return errors.New(utils.NOT_AUTHORIZED)
	}
	if appointment.Cancelled {
		return errors.New(utils.APPOINTMENT_CANCELLED)
	}
	if appointment.Payment {
		return errors.New(utils.APPOINTMENT_ALREADY_PAID)
	}
	return nil
}

func markPaid(ctx context.Context, appointment *models.Appointment, chargeID string) error {
	coll := config.OpenCollection(config.AppointmentCollection)
	_, err := config.UpdateOne(ctx, coll,
		bson.M{"_id": appointment.ID},
		bson.M{"$set": bson.M{"payment": true, "paymentId": chargeID}})
	if err != nil {
		log.Println("Error while marking appointment paid: ", err)
	}
	return err
}

/*
* Charge the appointment amount against a card token
* Amount goes to the gateway in the smallest currency unit, the
* appointment id rides along as metadata
 */
func PayAppointment(ctx context.Context, userID, appointmentID, cardToken string) (*omise.Charge, error) {
	if cardToken == "" {
		return nil, errors.New(utils.MISSING_DETAILS)
	}
	appointment, err := FetchAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := payableBy(appointment, userID); err != nil {
		return nil, err
	}

	client, err := omiseClient()
	if err != nil {
		return nil, err
	}
	charge := &omise.Charge{}
	err = client.Do(charge, &operations.CreateCharge{
		Amount:   chargeAmount(appointment.Amount),
		Currency: config.App.Currency,
		Card:     cardToken,
		Metadata: map[string]interface{}{"appointment_id": appointmentID},
	})
	if err != nil {
		log.Println("Error while creating charge: ", err)
		return nil, err
	}

	switch string(charge.Status) {
	case "successful":
		if err := markPaid(ctx, appointment, charge.ID); err != nil {
			return nil, err
		}
	case "failed":
		msg := utils.PAYMENT_NOT_COMPLETED
		if charge.FailureMessage != nil {
			msg = *charge.FailureMessage
		}
		return charge, errors.New(msg)
	default:
		// pending / awaiting_authorize settle later through VerifyPayment
		coll := config.OpenCollection(config.AppointmentCollection)
		if _, err := config.UpdateOne(ctx, coll,
			bson.M{"_id": appointment.ID},
			bson.M{"$set": bson.M{"paymentId": charge.ID}}); err != nil {
			log.Println("Error while storing pending charge id: ", err)
		}
	}
	return charge, nil
}

/*
* Re-check a pending charge with the gateway and settle the payment flag
 */
func VerifyPayment(ctx context.Context, userID, appointmentID string) (bool, error) {
	appointment, err := FetchAppointmentByID(ctx, appointmentID)
	if err != nil {
		return false, err
	}
	if appointment.UserID != userID {
		return false, errors.New(utils.NOT_AUTHORIZED)
	}
	if appointment.Payment {
		return true, nil
	}
	if appointment.PaymentID == "" {
		return false, errors.New(utils.PAYMENT_NOT_INITIATED)
	}

	client, err := omiseClient()
	if err != nil {
		return false, err
	}
	charge := &omise.Charge{}
	if err := client.Do(charge, &operations.RetrieveCharge{ChargeID: appointment.PaymentID}); err != nil {
		log.Println("Error while retrieving charge: ", err)
		return false, err
	}
	if string(charge.Status) == "successful" {
		if err := markPaid(ctx, appointment, charge.ID); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

/*
* Render a receipt for a paid appointment owned by the requester
 */
func AppointmentReceipt(ctx context.Context, userID, appointmentID string) ([]byte, error) {
	appointment, err := FetchAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, errors.New(utils.NOT_AUTHORIZED)
	}
	if !appointment.Payment {
		return nil, errors.New(utils.PAYMENT_NOT_COMPLETED)
	}
	return utils.GenerateReceiptPDF(*appointment)
}
