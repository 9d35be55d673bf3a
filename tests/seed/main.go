package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"fairway/config"
	"fairway/database"
	"fairway/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the courses collection with demo data: a handful of San Diego
// courses plus one international one, each with a 7-day forward tee sheet.
func main() {
	config.LoadConfig()
	database.InitDB()
	coll := database.MongoClient.Database("fairway").Collection("courses")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear courses collection: %v", err)
	}

	courses := []models.Course{
		{
			ID:   "torrey-pines-south",
			Name: "Torrey Pines South",
			Location: models.CourseLocation{
				City: "San Diego", State: "CA", Country: "USA",
				Geo: models.NewGeoPoint(-117.2526, 32.9007),
			},
			Type: models.CourseTypePublic, Status: "open",
			Holes: 18, Par: 72, Yardage: 7802, Slope: 144, Rating: 77.8,
			Designer: "William Bell", YearBuilt: 1957,
			AveragePrice: 295, RatingStars: 4.8, ReviewsCount: 2100, Verified: true,
			Amenities:   []string{"driving_range", "pro_shop", "restaurant", "cart_rental"},
			Website:     "https://www.sandiego.gov/park-and-recreation/golf/torreypines",
			Phone:       "+1 858 452 3226",
			Description: "Championship oceanside municipal course, host of the Farmers Insurance Open.",
		},
		{
			ID:   "balboa-park-gc",
			Name: "Balboa Park Golf Course",
			Location: models.CourseLocation{
				City: "San Diego", State: "CA", Country: "USA",
				Geo: models.NewGeoPoint(-117.1368, 32.7185),
			},
			Type: models.CourseTypePublic, Status: "open",
			Holes: 18, Par: 72, Yardage: 6339, Slope: 122, Rating: 70.5,
			YearBuilt: 1915, AveragePrice: 58, RatingStars: 4.1, ReviewsCount: 640,
			Amenities:   []string{"pro_shop", "putting_green"},
			Phone:       "+1 619 235 1184",
			Description: "Historic city course minutes from downtown.",
			LocalRules:  "Soft spikes only. Carts must stay on paths on holes 3 and 12.",
		},
		{
			ID:   "aviara-gc",
			Name: "Aviara Golf Club",
			Location: models.CourseLocation{
				City: "Carlsbad", State: "CA", Country: "USA",
				Geo: models.NewGeoPoint(-117.2837, 33.1072),
			},
			Type: models.CourseTypeResort, Status: "open",
			Holes: 18, Par: 72, Yardage: 7007, Slope: 137, Rating: 74.2,
			Designer: "Arnold Palmer", YearBuilt: 1991,
			AveragePrice: 175, RatingStars: 4.6, ReviewsCount: 980, Verified: true,
			Amenities:   []string{"driving_range", "pro_shop", "restaurant", "spa", "club_rental"},
			Website:     "https://www.parkaviara.com/golf",
			Description: "Arnold Palmer design winding through the Batiquitos Lagoon.",
		},
		{
			ID:   "st-andrews-old",
			Name: "Old Course at St Andrews",
			Location: models.CourseLocation{
				City: "St Andrews", Country: "Scotland",
				Geo: models.NewGeoPoint(-2.8037, 56.3432),
			},
			Type: models.CourseTypePublic, Status: "open",
			Holes: 18, Par: 72, Yardage: 7305, Slope: 132, Rating: 73.1,
			AveragePrice: 320, RatingStars: 4.9, ReviewsCount: 5400, Verified: true,
			Amenities:   []string{"caddies", "pro_shop", "club_rental"},
			Website:     "https://www.standrews.com",
			Description: "The home of golf.",
		},
	}

	for i := range courses {
		courses[i].Availability = demoAvailability()
	}

	docs := make([]interface{}, len(courses))
	for i, c := range courses {
		docs[i] = c
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed courses: %v", err)
	}
	fmt.Printf("Seeded %d courses\n", len(courses))
}

// demoAvailability builds a 7-day forward window of tee slots from 06:30 to
// 17:00 on the half hour, with randomized availability and twilight pricing.
func demoAvailability() []models.DailyAvailability {
	var days []models.DailyAvailability
	for d := 0; d < 7; d++ {
		date := time.Now().AddDate(0, 0, d).Format("2006-01-02")
		var slots []models.TeeSlot
		for minutes := 6*60 + 30; minutes <= 17*60; minutes += 30 {
			available := rand.Float64() < 0.7
			players := 0
			if available {
				players = 1 + rand.Intn(4)
			}
			price := 60.0 + float64(rand.Intn(5))*10
			if minutes >= 17*60 {
				price *= 0.6 // twilight rate
			}
			slots = append(slots, models.TeeSlot{
				Time:             fmt.Sprintf("%02d:%02d", minutes/60, minutes%60),
				Available:        available,
				Price:            price,
				PlayersAvailable: players,
			})
		}
		days = append(days, models.DailyAvailability{Date: date, Slots: slots})
	}
	return days
}
