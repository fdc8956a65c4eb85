package jobs

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"DocSpot/config"
	"DocSpot/models"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily slot ledger pruning...")
		PruneLedgers(context.Background(), time.Now())
	})

	c.Start()
}

/*
* Parse a day_month_year ledger key into a date
 */
func parseDateKey(dateKey string) (time.Time, bool) {
	parts := strings.Split(dateKey, "_")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// PastDateKeys returns the ledger keys strictly before the day of now.
// Unparseable keys are left alone.
func PastDateKeys(ledger models.SlotLedger, now time.Time) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var keys []string
	for key := range ledger {
		if date, ok := parseDateKey(key); ok && date.Before(today) {
			keys = append(keys, key)
		}
	}
	return keys
}

/*
* Drop past-date entries from every doctor's ledger
* The ledger is a derived index; booking history stays on appointments
 */
func PruneLedgers(ctx context.Context, now time.Time) {
	coll := config.OpenCollection(config.DoctorCollection)
	doctors, err := config.FindAll(ctx, coll, nil, nil)
	if err != nil {
		log.Println("Error while listing doctors for pruning: ", err)
		return
	}

	for _, doc := range doctors {
		ledger := models.SlotLedger{}
		switch raw := doc["slots_booked"].(type) {
		case bson.M:
			for key := range raw {
				ledger[key] = nil
			}
		case primitive.D:
			for _, elem := range raw {
				ledger[elem.Key] = nil
			}
		default:
			continue
		}
		stale := PastDateKeys(ledger, now)
		if len(stale) == 0 {
			continue
		}

		unset := bson.M{}
		for _, key := range stale {
			unset["slots_booked."+key] = ""
		}
		_, err := config.UpdateOne(ctx, coll,
			bson.M{"_id": doc["_id"]},
			bson.M{"$unset": unset})
		if err != nil {
			log.Println("Error while pruning ledger for doctor ", doc["_id"], ": ", err)
		}
	}
}
