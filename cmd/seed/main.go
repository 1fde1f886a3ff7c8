package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"spotstay/internal/adapters/observability"
	"spotstay/internal/domain"
	"spotstay/internal/shared"
	mysqlrepo "spotstay/internal/storage/mysql"
)

type demoSpot struct {
	owner   int
	spot    domain.Spot
	images  []domain.SpotImage
	reviews []domain.Review
}

var demoUsers = []struct {
	first, last, email, username, password string
}{
	{"Ana", "Reyes", "ana@spotstay.dev", "ana", "password1"},
	{"Bo", "Lin", "bo@spotstay.dev", "bo", "password2"},
	{"Demo", "User", "demo@spotstay.dev", "demo", "password3"},
}

var demoSpots = []demoSpot{
	{
		owner: 0,
		spot: domain.Spot{
			Address: "123 Shore Rd", City: "Astoria", State: "OR", Country: "USA",
			Lat: 46.1879, Lng: -123.8313, Name: "Lighthouse Loft",
			Description: strp("Sea view loft a short walk from the pier."), Price: 120,
		},
		images: []domain.SpotImage{
			{URL: "https://images.spotstay.dev/lighthouse/front.jpg", Preview: true},
			{URL: "https://images.spotstay.dev/lighthouse/kitchen.jpg"},
		},
		reviews: []domain.Review{
			{UserID: 2, Review: "Fantastic view, would stay again.", Stars: 5},
			{UserID: 3, Review: "A bit drafty in winter.", Stars: 3},
		},
	},
	{
		owner: 1,
		spot: domain.Spot{
			Address: "88 Canyon Way", City: "Moab", State: "UT", Country: "USA",
			Lat: 38.5733, Lng: -109.5498, Name: "Red Rock Cabin",
			Description: strp("Quiet cabin at the canyon edge."), Price: 95,
		},
		images: []domain.SpotImage{
			{URL: "https://images.spotstay.dev/redrock/porch.jpg", Preview: true},
		},
		reviews: []domain.Review{
			{UserID: 1, Review: "Great base for hiking.", Stars: 4},
		},
	},
	{
		owner: 1,
		spot: domain.Spot{
			Address: "7 Rue des Lilas", City: "Lyon", State: "Rhone", Country: "France",
			Lat: 45.7640, Lng: 4.8357, Name: "Silk District Flat",
			Description: strp("Top-floor flat in the old silk district."), Price: 150,
		},
	},
}

func strp(s string) *string { return &s }

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	// users first: spots, reviews and bookings all reference them
	userIDs := make([]int64, len(demoUsers))
	for i, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("bcrypt failed")
		}
		created, err := repo.CreateUser(ctx, domain.User{
			FirstName: u.first, LastName: u.last,
			Email: u.email, Username: u.username, HashedPassword: hash,
		})
		if err != nil {
			log.Fatal().Str("user", u.username).Err(err).Msg("seed user failed")
		}
		userIDs[i] = created.ID
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, ds := range demoSpots {
		ds := ds

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedSpot(ctx, repo, ds, userIDs); err != nil {
				log.Warn().Str("spot", ds.spot.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("spot", ds.spot.Name).Msg("seed ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func seedSpot(ctx context.Context, repo *mysqlrepo.Repo, ds demoSpot, userIDs []int64) error {
	s := ds.spot
	s.OwnerID = userIDs[ds.owner]
	created, err := repo.CreateSpot(ctx, s)
	if err != nil {
		return err
	}

	for _, img := range ds.images {
		img.SpotID = created.ID
		if _, err := repo.AddSpotImage(ctx, img); err != nil {
			return err
		}
	}

	for _, rv := range ds.reviews {
		rv.SpotID = created.ID
		rv.UserID = userIDs[rv.UserID-1]
		if _, err := repo.CreateReview(ctx, rv); err != nil {
			return err
		}
	}

	// one upcoming booking per spot by a non-owner
	renter := userIDs[(ds.owner+1)%len(userIDs)]
	start := time.Now().AddDate(0, 0, 14)
	_, err = repo.AddBooking(ctx, domain.Booking{
		SpotID: created.ID, UserID: renter,
		StartDate: start, EndDate: start.AddDate(0, 0, 4),
	})
	return err
}
