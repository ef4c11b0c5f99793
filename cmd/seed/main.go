package main

import (
	"context"
	"log"
	"time"

	"cinema-manager/internal/clock"
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/migrations"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/database"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

// Seeds the database with a small working data set: two rooms with seats,
// three films, two screenings and a couple of tickets and reviews.
func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()

	log.Println("Applying schema...")
	if err := migrations.Apply(ctx, db); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}

	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, clock.NewSystem(), logger)

	// ================== DIRECTORS ==================
	log.Println("Creating directors...")
	felliniBirth := time.Date(1920, 1, 20, 0, 0, 0, 0, time.UTC)
	fellini := &entity.Director{FirstName: "Federico", LastName: "Fellini", Nationality: strPtr("Italian"), BirthDate: &felliniBirth}
	nolanBirth := time.Date(1970, 7, 30, 0, 0, 0, 0, time.UTC)
	nolan := &entity.Director{FirstName: "Christopher", LastName: "Nolan", Nationality: strPtr("British"), BirthDate: &nolanBirth}
	mustCreate(repo.Director.Create(ctx, fellini))
	mustCreate(repo.Director.Create(ctx, nolan))

	// ================== FILMS ==================
	log.Println("Creating films...")
	dolceVita := &entity.Film{Title: "La Dolce Vita", RuntimeMin: 174, Genre: "Drama", Rating: "T", ReleaseYear: 1960, DirectorID: fellini.ID}
	inception := &entity.Film{Title: "Inception", RuntimeMin: 148, Genre: "Sci-Fi", Rating: "T", ReleaseYear: 2010, DirectorID: nolan.ID}
	comedy := &entity.Film{Title: "Endless Laughs", RuntimeMin: 90, Genre: "Comedy", Rating: "T", ReleaseYear: 2022, DirectorID: nolan.ID}
	mustCreate(repo.Film.Create(ctx, dolceVita))
	mustCreate(repo.Film.Create(ctx, inception))
	mustCreate(repo.Film.Create(ctx, comedy))

	// ================== ROOMS AND SEATS ==================
	log.Println("Creating rooms and seats...")
	room1 := &entity.Room{Number: 1, Capacity: 100, Status: entity.RoomStatusActive}
	room2 := &entity.Room{Number: 2, Capacity: 80, Status: entity.RoomStatusActive}
	mustCreate(repo.Room.Create(ctx, room1))
	mustCreate(repo.Room.Create(ctx, room2))

	for _, room := range []*entity.Room{room1, room2} {
		for _, row := range []string{"A", "B"} {
			for num := 1; num <= 5; num++ {
				seat := &entity.Seat{RoomID: room.ID, RowLabel: row, Number: num, Status: entity.SeatStatusAvailable}
				mustCreate(repo.Seat.Create(ctx, seat))
			}
		}
	}

	// ================== TARIFFS ==================
	log.Println("Creating tariffs...")
	standard := &entity.Tariff{Name: "Standard", BasePrice: 8.00}
	weekend := &entity.Tariff{Name: "Weekend", BasePrice: 10.00}
	mustCreate(repo.Tariff.Create(ctx, standard))
	mustCreate(repo.Tariff.Create(ctx, weekend))

	// ================== STAFF ==================
	log.Println("Creating staff...")
	cashierHash, err := utils.HashPassword("cashier123")
	mustCreate(err)
	projectionistHash, err := utils.HashPassword("projector123")
	mustCreate(err)
	cashier := &entity.Staff{FirstName: "Anna", LastName: "Verdi", Username: "averdi", PasswordHash: cashierHash, Role: entity.StaffRoleCashier}
	projectionist := &entity.Staff{FirstName: "Marco", LastName: "Blu", Username: "mblu", PasswordHash: projectionistHash, Role: entity.StaffRoleProjectionist}
	mustCreate(repo.Staff.Create(ctx, cashier))
	mustCreate(repo.Staff.Create(ctx, projectionist))

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	marioBirth := "1990-05-10"
	lucaBirth := "1985-11-22"
	mario, err := service.Customer.RegisterCustomer(ctx, &request.RegisterCustomerRequest{
		FirstName: "Mario", LastName: "Rossi", Email: "mario.rossi@email.com",
		Phone: strPtr("3331234567"), BirthDate: &marioBirth,
	})
	mustCreate(err)
	luca, err := service.Customer.RegisterCustomer(ctx, &request.RegisterCustomerRequest{
		FirstName: "Luca", LastName: "Bianchi", Email: "luca.bianchi@email.com",
		Phone: strPtr("3339876543"), BirthDate: &lucaBirth,
	})
	mustCreate(err)

	// ================== SCREENINGS ==================
	log.Println("Creating screenings...")
	today := time.Now().UTC().Format(utils.DateLayout)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(utils.DateLayout)

	screening1, err := service.Scheduling.CreateScreening(ctx, &request.CreateScreeningRequest{
		Date: today, StartTime: "18:00", EndTime: "21:00",
		FilmID: dolceVita.ID, RoomID: room1.ID, StaffID: projectionist.ID, TariffID: standard.ID,
	})
	mustCreate(err)
	screening2, err := service.Scheduling.CreateScreening(ctx, &request.CreateScreeningRequest{
		Date: tomorrow, StartTime: "18:00", EndTime: "21:00",
		FilmID: inception.ID, RoomID: room2.ID, StaffID: projectionist.ID, TariffID: weekend.ID,
	})
	mustCreate(err)

	// ================== PROMOTIONS ==================
	log.Println("Creating promotion...")
	promo, err := service.Promotion.CreatePromotion(ctx, &request.PromotionRequest{
		Name:            "Student Discount July",
		DiscountPercent: 20,
		StartDate:       today,
		EndDate:         time.Now().UTC().AddDate(0, 0, 30).Format(utils.DateLayout),
		Category:        "Student Discount",
		Description:     strPtr("Discount for university students"),
	})
	mustCreate(err)

	// ================== TICKETS ==================
	log.Println("Selling tickets...")
	sellFirstFreeSeat(ctx, service, screening1.ID, mario.ID, nil)
	sellFirstFreeSeat(ctx, service, screening2.ID, luca.ID, &promo.ID)

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	_, err = service.Review.CreateReview(ctx, &request.ReviewRequest{
		CustomerID: mario.ID, FilmID: dolceVita.ID, Rating: 9, Comment: "Beautiful film!",
	})
	mustCreate(err)
	_, err = service.Review.CreateReview(ctx, &request.ReviewRequest{
		CustomerID: luca.ID, FilmID: inception.ID, Rating: 8, Comment: "Very engaging.",
	})
	mustCreate(err)

	log.Println("Sample data inserted")
}

func sellFirstFreeSeat(ctx context.Context, service *usecase.Service, screeningID, customerID int64, promotionID *int64) {
	seats, err := service.Ticketing.ListAvailableSeats(ctx, screeningID)
	mustCreate(err)
	if len(seats) == 0 {
		log.Printf("No free seats for screening %d", screeningID)
		return
	}

	_, err = service.Ticketing.SellTicket(ctx, &request.SellTicketRequest{
		ScreeningID: screeningID,
		CustomerID:  customerID,
		SeatID:      seats[0].ID,
		PromotionID: promotionID,
	})
	mustCreate(err)
}

func strPtr(s string) *string {
	return &s
}

func mustCreate(err error) {
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
