package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"cinebook/internal/database"
	"cinebook/internal/domain"
	"cinebook/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "cinebook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booked_seats")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM user_vouchers")
	db.Exec("DELETE FROM vouchers")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM screenings")
	db.Exec("DELETE FROM seats")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM cinemas")
	db.Exec("DELETE FROM movie_genres")
	db.Exec("DELETE FROM movies")
	db.Exec("DELETE FROM genres")
	db.Exec("DELETE FROM snacks")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.User{
		Email:        "staff@cinebook.io",
		PasswordHash: string(staffHash),
		Role:         domain.RoleStaff,
		Name:         "Box Office",
	}
	db.Create(&staff)
	log.Println("Staff created: staff@cinebook.io / staff123")

	moviegoers := []domain.User{}
	for i, email := range []string{"alice@example.com", "bruno@example.com", "chen@example.com"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("moviegoer123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleMoviegoer,
			Name:         fmt.Sprintf("Moviegoer %d", i+1),
		}
		db.Create(&u)
		moviegoers = append(moviegoers, u)
	}

	// ================== CATALOG ==================
	log.Println("Creating genres and movies...")

	genres := []domain.Genre{{Name: "Drama"}, {Name: "Sci-Fi"}, {Name: "Comedy"}, {Name: "Horror"}}
	for i := range genres {
		db.Create(&genres[i])
	}

	movies := []domain.Movie{
		{
			Title:           "Solar Winds",
			Description:     "A crew drifts home on a failing sail.",
			Director:        "M. Okafor",
			DurationMinutes: 120,
			ReleaseDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Genres:          []domain.Genre{genres[0], genres[1]},
		},
		{
			Title:           "The Long Intermission",
			Description:     "A projectionist refuses to show the last reel.",
			Director:        "R. Castellanos",
			DurationMinutes: 95,
			ReleaseDate:     time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
			Genres:          []domain.Genre{genres[2]},
		},
	}
	for i := range movies {
		db.Create(&movies[i])
	}

	log.Println("Creating cinemas, rooms and seats...")

	cinema := domain.Cinema{Name: "CineBook Central", Address: "12 Harbor Street", City: "Rotterdam"}
	db.Create(&cinema)

	rooms := []domain.Room{
		{Name: "Hall 1", CinemaID: cinema.ID},
		{Name: "Hall 2", CinemaID: cinema.ID},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	for _, room := range rooms {
		var seats []domain.Seat
		for _, row := range []string{"A", "B", "C"} {
			for n := 1; n <= 8; n++ {
				st := domain.SeatStandard
				if row == "A" && n <= 2 {
					st = domain.SeatVIP
				}
				if row == "C" && n >= 7 {
					st = domain.SeatAccessible
				}
				seats = append(seats, domain.Seat{Row: row, Number: n, Type: st, RoomID: room.ID})
			}
		}
		db.Create(&seats)
		db.Model(&domain.Room{}).Where("id = ?", room.ID).Update("total_seats", len(seats))
	}

	// ================== SCREENINGS ==================
	log.Println("Creating screenings...")

	base := time.Now().Truncate(time.Hour).Add(26 * time.Hour)
	screenings := []domain.Screening{
		{StartTime: base, Format: "2D", Price: decimal.RequireFromString("11.50"), IsAvailable: true, MovieID: movies[0].ID, RoomID: rooms[0].ID},
		{StartTime: base.Add(3 * time.Hour), Format: "IMAX", Price: decimal.RequireFromString("16.00"), IsAvailable: true, MovieID: movies[0].ID, RoomID: rooms[0].ID},
		{StartTime: base.Add(time.Hour), Format: "2D", Price: decimal.RequireFromString("9.75"), IsAvailable: true, MovieID: movies[1].ID, RoomID: rooms[1].ID},
	}
	for i := range screenings {
		db.Create(&screenings[i])
	}

	// ================== VOUCHERS & SNACKS ==================
	log.Println("Creating vouchers and snacks...")

	open := domain.Voucher{
		Code:            "W10",
		DiscountPercent: decimal.NewFromInt(10),
		ExpDate:         time.Now().Add(90 * 24 * time.Hour),
	}
	db.Create(&open)

	restricted := domain.Voucher{
		Code:            "V25",
		DiscountPercent: decimal.NewFromInt(25),
		ExpDate:         time.Now().Add(30 * 24 * time.Hour),
		Users:           []domain.User{moviegoers[0]},
	}
	db.Create(&restricted)

	snacks := []domain.Snack{
		{Name: "Popcorn L", Price: decimal.RequireFromString("6.50")},
		{Name: "Nachos", Price: decimal.RequireFromString("5.00")},
		{Name: "Soda 0.5L", Price: decimal.RequireFromString("3.25")},
	}
	for i := range snacks {
		db.Create(&snacks[i])
	}

	log.Println("Seed complete.")
}
